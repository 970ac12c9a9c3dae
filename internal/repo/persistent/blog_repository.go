package persistent

import (
	"wallpaperhub/internal/entity"
	"wallpaperhub/internal/slug"
	"wallpaperhub/pkg/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type PostFilter struct {
	Category string
	Tag      string
	Limit    int
	Offset   int
}

type BlogRepository interface {
	CreatePost(post *entity.BlogPost) error
	UpdatePost(post *entity.BlogPost) error
	DeletePost(id string) error
	GetPostByID(id string) (*entity.BlogPost, error)
	GetPostBySlug(slug string) (*entity.BlogPost, error)
	ListPublished(filter PostFilter) ([]*entity.BlogPost, error)
	IncrementViews(id string) error
	SlugExists(slug string) (bool, error)
}

type blogRepository struct {
	db *gorm.DB
}

func NewBlogRepository(db *gorm.DB) BlogRepository {
	return &blogRepository{db: db}
}

func (r *blogRepository) CreatePost(post *entity.BlogPost) error {
	row := &models.BlogPost{
		ID:          post.ID,
		Title:       post.Title,
		Slug:        post.Slug,
		Excerpt:     post.Excerpt,
		Content:     post.Content,
		Status:      models.PostStatus(post.Status),
		Author:      post.Author,
		PublishedAt: post.PublishedAt,
	}

	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(row).Error; err != nil {
			return err
		}
		if err := r.replaceTaxonomy(tx, row, post.Categories, post.Tags); err != nil {
			return err
		}
		*post = *ToBlogPostEntity(row)
		return nil
	})
}

func (r *blogRepository) UpdatePost(post *entity.BlogPost) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var row models.BlogPost
		if err := tx.Where("id = ?", post.ID).First(&row).Error; err != nil {
			return err
		}

		row.Title = post.Title
		row.Slug = post.Slug
		row.Excerpt = post.Excerpt
		row.Content = post.Content
		row.Status = models.PostStatus(post.Status)
		row.Author = post.Author
		row.PublishedAt = post.PublishedAt

		if err := tx.Save(&row).Error; err != nil {
			return err
		}
		if err := r.replaceTaxonomy(tx, &row, post.Categories, post.Tags); err != nil {
			return err
		}
		*post = *ToBlogPostEntity(&row)
		return nil
	})
}

// replaceTaxonomy find-or-creates the named categories and tags and
// replaces the post's associations with them.
func (r *blogRepository) replaceTaxonomy(tx *gorm.DB, row *models.BlogPost, categories, tags []string) error {
	cats := make([]models.BlogCategory, 0, len(categories))
	for _, name := range categories {
		var cat models.BlogCategory
		err := tx.Where(models.BlogCategory{Slug: slug.Slugify(name)}).
			Attrs(models.BlogCategory{Name: name}).
			FirstOrCreate(&cat).Error
		if err != nil {
			return err
		}
		cats = append(cats, cat)
	}
	if err := tx.Model(row).Association("Categories").Replace(cats); err != nil {
		return err
	}

	tagRows := make([]models.BlogTag, 0, len(tags))
	for _, name := range tags {
		var tag models.BlogTag
		err := tx.Where(models.BlogTag{Slug: slug.Slugify(name)}).
			Attrs(models.BlogTag{Name: name}).
			FirstOrCreate(&tag).Error
		if err != nil {
			return err
		}
		tagRows = append(tagRows, tag)
	}
	if err := tx.Model(row).Association("Tags").Replace(tagRows); err != nil {
		return err
	}

	row.Categories = cats
	row.Tags = tagRows
	return nil
}

func (r *blogRepository) DeletePost(id string) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("post_id = ?", id).Delete(&models.BlogComment{}).Error; err != nil {
			return err
		}
		result := tx.Where("id = ?", id).Delete(&models.BlogPost{})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
}

func (r *blogRepository) GetPostByID(id string) (*entity.BlogPost, error) {
	var row models.BlogPost
	err := r.db.Preload("Categories").Preload("Tags").Where("id = ?", id).First(&row).Error
	if err != nil {
		return nil, err
	}
	return ToBlogPostEntity(&row), nil
}

func (r *blogRepository) GetPostBySlug(slug string) (*entity.BlogPost, error) {
	var row models.BlogPost
	err := r.db.Preload("Categories").Preload("Tags").Where("slug = ?", slug).First(&row).Error
	if err != nil {
		return nil, err
	}
	return ToBlogPostEntity(&row), nil
}

func (r *blogRepository) ListPublished(filter PostFilter) ([]*entity.BlogPost, error) {
	query := r.db.Model(&models.BlogPost{}).
		Preload("Categories").Preload("Tags").
		Where("status = ?", string(models.PostPublished)).
		Order("published_at DESC")

	if filter.Category != "" {
		query = query.
			Joins("INNER JOIN blog_post_categories bpc ON bpc.blog_post_id = blog_posts.id").
			Joins("INNER JOIN blog_categories bc ON bc.id = bpc.blog_category_id").
			Where("bc.slug = ?", filter.Category)
	}
	if filter.Tag != "" {
		query = query.
			Joins("INNER JOIN blog_post_tags bpt ON bpt.blog_post_id = blog_posts.id").
			Joins("INNER JOIN blog_tags bt ON bt.id = bpt.blog_tag_id").
			Where("bt.slug = ?", filter.Tag)
	}
	if filter.Limit > 0 {
		query = query.Limit(filter.Limit).Offset(filter.Offset)
	}

	var rows []models.BlogPost
	if err := query.Find(&rows).Error; err != nil {
		return nil, err
	}

	posts := make([]*entity.BlogPost, len(rows))
	for i := range rows {
		posts[i] = ToBlogPostEntity(&rows[i])
	}
	return posts, nil
}

func (r *blogRepository) IncrementViews(id string) error {
	return r.db.Model(&models.BlogPost{}).
		Where("id = ?", id).
		UpdateColumn("views", clause.Expr{SQL: "views + ?", Vars: []interface{}{1}}).Error
}

func (r *blogRepository) SlugExists(slug string) (bool, error) {
	var count int64
	err := r.db.Model(&models.BlogPost{}).Where("slug = ?", slug).Count(&count).Error
	return count > 0, err
}
