package http

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"wallpaperhub/internal/entity"
	"wallpaperhub/internal/usecase"
	"wallpaperhub/pkg/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

const wallpaperID = "550e8400-e29b-41d4-a716-446655440000"

func TestLikeWallpaper_Like(t *testing.T) {
	mockInteractions := new(MockInteractionUseCase)
	handler := NewInteractionHandler(mockInteractions, logger.New())

	router := setupTestRouter()
	router.POST("/wallpapers/:id/like", handler.LikeWallpaper)

	mockInteractions.On("ToggleLike", wallpaperID, "dev-1", mock.Anything, true).
		Return(&usecase.LikeResult{Liked: true, TotalLikes: 6}, nil)

	body := `{"device_id":"dev-1","action":"like"}`
	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/wallpapers/"+wallpaperID+"/like", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	var response map[string]interface{}
	json.Unmarshal(w.Body.Bytes(), &response)
	assert.Equal(t, true, response["success"])
	assert.Equal(t, true, response["liked"])
	assert.Equal(t, float64(6), response["total_likes"])
	mockInteractions.AssertExpectations(t)
}

func TestLikeWallpaper_InvalidAction(t *testing.T) {
	mockInteractions := new(MockInteractionUseCase)
	handler := NewInteractionHandler(mockInteractions, logger.New())

	router := setupTestRouter()
	router.POST("/wallpapers/:id/like", handler.LikeWallpaper)

	body := `{"device_id":"dev-1","action":"superlike"}`
	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/wallpapers/"+wallpaperID+"/like", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	mockInteractions.AssertNotCalled(t, "ToggleLike", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestLikeWallpaper_BadID(t *testing.T) {
	mockInteractions := new(MockInteractionUseCase)
	handler := NewInteractionHandler(mockInteractions, logger.New())

	router := setupTestRouter()
	router.POST("/wallpapers/:id/like", handler.LikeWallpaper)

	body := `{"device_id":"dev-1","action":"like"}`
	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/wallpapers/not-a-uuid/like", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestLikeWallpaper_UnknownWallpaper(t *testing.T) {
	mockInteractions := new(MockInteractionUseCase)
	handler := NewInteractionHandler(mockInteractions, logger.New())

	router := setupTestRouter()
	router.POST("/wallpapers/:id/like", handler.LikeWallpaper)

	mockInteractions.On("ToggleLike", wallpaperID, "dev-1", mock.Anything, false).
		Return(nil, usecase.ErrNotFound)

	body := `{"device_id":"dev-1","action":"unlike"}`
	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/wallpapers/"+wallpaperID+"/like", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestRecordInteraction(t *testing.T) {
	mockInteractions := new(MockInteractionUseCase)
	handler := NewInteractionHandler(mockInteractions, logger.New())

	router := setupTestRouter()
	router.POST("/interactions", handler.RecordInteraction)

	mockInteractions.On("Record", wallpaperID, entity.InteractionDownload, "sess-1", mock.Anything).
		Return(&entity.Interaction{ID: "int-1", WallpaperID: wallpaperID, Type: entity.InteractionDownload},
			&usecase.InteractionCounts{Views: 10, Likes: 2, Downloads: 5}, nil)

	body := `{"wallpaper_id":"` + wallpaperID + `","interaction_type":"download","session_id":"sess-1"}`
	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/interactions", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	var response map[string]interface{}
	json.Unmarshal(w.Body.Bytes(), &response)
	assert.Equal(t, true, response["success"])
	statsMap := response["stats"].(map[string]interface{})
	assert.Equal(t, float64(5), statsMap["downloads"])
	mockInteractions.AssertExpectations(t)
}

func TestRecordInteraction_Validation(t *testing.T) {
	mockInteractions := new(MockInteractionUseCase)
	handler := NewInteractionHandler(mockInteractions, logger.New())

	router := setupTestRouter()
	router.POST("/interactions", handler.RecordInteraction)

	cases := []string{
		`{"wallpaper_id":"not-a-uuid","interaction_type":"view","session_id":"s"}`,
		`{"wallpaper_id":"` + wallpaperID + `","interaction_type":"share","session_id":"s"}`,
		`{"interaction_type":"view","session_id":"s"}`,
	}
	for _, body := range cases {
		w := httptest.NewRecorder()
		req, _ := http.NewRequest("POST", "/interactions", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code, "body %s", body)
	}
	mockInteractions.AssertNotCalled(t, "Record", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}
