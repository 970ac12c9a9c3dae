package usecase

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"wallpaperhub/internal/entity"
	"wallpaperhub/internal/repo/persistent"
	"wallpaperhub/pkg/logger"
	"wallpaperhub/pkg/queue"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

type LikeResult struct {
	Liked      bool  `json:"liked"`
	TotalLikes int64 `json:"total_likes"`
}

type InteractionCounts struct {
	Views     int64 `json:"views"`
	Likes     int64 `json:"likes"`
	Downloads int64 `json:"downloads"`
}

type InteractionUseCase interface {
	ToggleLike(wallpaperID, sessionID, ip string, like bool) (*LikeResult, error)
	Record(wallpaperID string, kind entity.InteractionType, sessionID, ip string) (*entity.Interaction, *InteractionCounts, error)
	RecordView(wallpaperID, sessionID, ip string)
	RecordDownload(wallpaperID, sessionID, ip string) (int64, error)
	HasLiked(wallpaperID, sessionID string) (bool, error)
}

type interactionUseCase struct {
	wallpaperRepo   persistent.WallpaperRepository
	interactionRepo persistent.InteractionRepository
	redisClient     *redis.Client
	queueClient     *queue.Client
	logger          *logger.Logger
}

func NewInteractionUseCase(
	wallpaperRepo persistent.WallpaperRepository,
	interactionRepo persistent.InteractionRepository,
	redisClient *redis.Client,
	queueClient *queue.Client,
	log *logger.Logger,
) InteractionUseCase {
	return &interactionUseCase{
		wallpaperRepo:   wallpaperRepo,
		interactionRepo: interactionRepo,
		redisClient:     redisClient,
		queueClient:     queueClient,
		logger:          log,
	}
}

// ToggleLike is idempotent from the caller's side: liking an already
// liked wallpaper (or unliking one never liked) reports the current
// state as success. The like count is always recomputed from the event
// log rather than incremented, so a racing duplicate toggle cannot
// make it drift.
func (uc *interactionUseCase) ToggleLike(wallpaperID, sessionID, ip string, like bool) (*LikeResult, error) {
	if err := uc.wallpaperExists(wallpaperID); err != nil {
		return nil, err
	}

	var changed bool
	var err error
	if like {
		changed, err = uc.interactionRepo.CreateLike(wallpaperID, sessionID, ip)
	} else {
		changed, err = uc.interactionRepo.DeleteLike(wallpaperID, sessionID)
	}
	if err != nil {
		uc.logger.Error("Failed to toggle like wallpaper=%s: %v", wallpaperID, err)
		return nil, fmt.Errorf("failed to toggle like: %w", err)
	}

	var total int64
	if changed {
		total, err = uc.refreshCount(wallpaperID, entity.InteractionLike)
		if err != nil {
			return nil, err
		}
		if like {
			uc.publishEvent(wallpaperID, entity.InteractionLike, sessionID)
		}
	} else {
		total, err = uc.likeCount(wallpaperID)
		if err != nil {
			return nil, err
		}
	}

	return &LikeResult{Liked: like, TotalLikes: total}, nil
}

// Record appends a generic interaction event and returns it with the
// wallpaper's refreshed counters. Likes routed through here keep their
// uniqueness guarantee.
func (uc *interactionUseCase) Record(wallpaperID string, kind entity.InteractionType, sessionID, ip string) (*entity.Interaction, *InteractionCounts, error) {
	if err := uc.wallpaperExists(wallpaperID); err != nil {
		return nil, nil, err
	}

	var interaction *entity.Interaction
	if kind == entity.InteractionLike {
		if _, err := uc.interactionRepo.CreateLike(wallpaperID, sessionID, ip); err != nil {
			return nil, nil, fmt.Errorf("failed to record like: %w", err)
		}
		interaction = &entity.Interaction{
			WallpaperID: wallpaperID,
			Type:        kind,
			SessionID:   sessionID,
			CreatedAt:   time.Now(),
		}
	} else {
		var err error
		interaction, err = uc.interactionRepo.Append(wallpaperID, kind, sessionID, ip)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to record interaction: %w", err)
		}
	}

	if _, err := uc.refreshCount(wallpaperID, kind); err != nil {
		return nil, nil, err
	}
	uc.publishEvent(wallpaperID, kind, sessionID)

	counts, err := uc.currentCounts(wallpaperID)
	if err != nil {
		return nil, nil, err
	}
	return interaction, counts, nil
}

// RecordView appends a view event without blocking the response path.
// Failures are logged and never surfaced.
func (uc *interactionUseCase) RecordView(wallpaperID, sessionID, ip string) {
	go func() {
		if _, err := uc.interactionRepo.Append(wallpaperID, entity.InteractionView, sessionID, ip); err != nil {
			uc.logger.Error("Failed to record view wallpaper=%s: %v", wallpaperID, err)
			return
		}
		if _, err := uc.refreshCount(wallpaperID, entity.InteractionView); err != nil {
			uc.logger.Error("Failed to refresh view count wallpaper=%s: %v", wallpaperID, err)
		}
		uc.publishEvent(wallpaperID, entity.InteractionView, sessionID)
	}()
}

func (uc *interactionUseCase) RecordDownload(wallpaperID, sessionID, ip string) (int64, error) {
	if _, err := uc.interactionRepo.Append(wallpaperID, entity.InteractionDownload, sessionID, ip); err != nil {
		return 0, fmt.Errorf("failed to record download: %w", err)
	}
	total, err := uc.refreshCount(wallpaperID, entity.InteractionDownload)
	if err != nil {
		return 0, err
	}
	uc.publishEvent(wallpaperID, entity.InteractionDownload, sessionID)
	return total, nil
}

func (uc *interactionUseCase) HasLiked(wallpaperID, sessionID string) (bool, error) {
	return uc.interactionRepo.HasLiked(wallpaperID, sessionID)
}

func (uc *interactionUseCase) wallpaperExists(wallpaperID string) error {
	_, err := uc.wallpaperRepo.GetByID(wallpaperID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	if err != nil {
		return fmt.Errorf("failed to look up wallpaper: %w", err)
	}
	return nil
}

// refreshCount recomputes one counter from the event log, mirrors it
// into the stats row and the redis cache. The stats-row write is
// best-effort: the event log stays authoritative and the row can be
// recomputed later.
func (uc *interactionUseCase) refreshCount(wallpaperID string, kind entity.InteractionType) (int64, error) {
	count, err := uc.interactionRepo.CountByType(wallpaperID, kind)
	if err != nil {
		return 0, fmt.Errorf("failed to count %s events: %w", kind, err)
	}

	if err := uc.interactionRepo.UpsertStat(wallpaperID, kind, count); err != nil {
		uc.logger.Error("Failed to upsert stats row wallpaper=%s kind=%s: %v", wallpaperID, kind, err)
	}

	if uc.redisClient != nil {
		ctx := context.Background()
		uc.redisClient.Set(ctx, countCacheKey(wallpaperID, kind), count, 0)
	}

	return count, nil
}

// likeCount reads through the redis cache before falling back to the
// event log.
func (uc *interactionUseCase) likeCount(wallpaperID string) (int64, error) {
	if uc.redisClient != nil {
		ctx := context.Background()
		if cached, err := uc.redisClient.Get(ctx, countCacheKey(wallpaperID, entity.InteractionLike)).Result(); err == nil {
			if count, err := strconv.ParseInt(cached, 10, 64); err == nil {
				return count, nil
			}
		}
	}

	count, err := uc.interactionRepo.CountByType(wallpaperID, entity.InteractionLike)
	if err != nil {
		return 0, fmt.Errorf("failed to count like events: %w", err)
	}
	if uc.redisClient != nil {
		uc.redisClient.Set(context.Background(), countCacheKey(wallpaperID, entity.InteractionLike), count, 0)
	}
	return count, nil
}

func (uc *interactionUseCase) currentCounts(wallpaperID string) (*InteractionCounts, error) {
	row, err := uc.wallpaperRepo.StatFor(wallpaperID)
	if err != nil {
		return nil, fmt.Errorf("failed to load stats: %w", err)
	}
	if row == nil {
		return &InteractionCounts{}, nil
	}
	return &InteractionCounts{Views: row.Views, Likes: row.Likes, Downloads: row.Downloads}, nil
}

// publishEvent ships the interaction to the analytics queue when one is
// configured. Fire-and-forget: failures are logged only.
func (uc *interactionUseCase) publishEvent(wallpaperID string, kind entity.InteractionType, sessionID string) {
	if uc.queueClient == nil {
		return
	}
	go func() {
		event := queue.InteractionEvent{
			WallpaperID: wallpaperID,
			Type:        string(kind),
			SessionID:   sessionID,
			OccurredAt:  time.Now(),
		}
		if err := uc.queueClient.PublishInteractionEvent(event); err != nil {
			uc.logger.Error("Failed to publish analytics event wallpaper=%s kind=%s: %v", wallpaperID, kind, err)
		}
	}()
}

func countCacheKey(wallpaperID string, kind entity.InteractionType) string {
	return fmt.Sprintf("wallpaper:%s:%s", kind, wallpaperID)
}
