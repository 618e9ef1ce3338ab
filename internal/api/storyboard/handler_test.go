package storyboard

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"content-studio/database"
	"content-studio/internal/domain/ideas"
	"content-studio/internal/domain/script"
	"content-studio/internal/domain/storyboard"
	"content-studio/internal/imagegen"
	"content-studio/internal/mediastore"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))
	database.DB = db

	root := t.TempDir()
	Media = mediastore.New(filepath.Join(root, "media"), filepath.Join(root, "trash"))

	r := gin.New()
	r.POST("/ideas/:id/scenes/:index/image", GenerateSceneImage)
	r.POST("/images/:id/trash", TrashSceneImage)
	return r
}

func seedIdeaWithBreakdown(t *testing.T) *ideas.Idea {
	t.Helper()
	idea := &ideas.Idea{RawContent: "Hello World", Status: ideas.StatusScript}
	require.NoError(t, database.DB.Create(idea).Error)

	breakdown := script.Breakdown{
		IdeaID: idea.ID,
		BreakdownData: map[string]any{
			"script_breakdown": map[string]any{
				"scenes": []any{map[string]any{"description": "A knight rides at dawn"}},
			},
		},
		PromptUsed:     "V1_Analytical",
		TargetPlatform: "YouTube",
		GlobalMood:     "Epic",
	}
	require.NoError(t, database.DB.Create(&breakdown).Error)
	return idea
}

func seedImage(t *testing.T, withFile bool) *storyboard.SceneImage {
	t.Helper()
	idea := &ideas.Idea{RawContent: "x", Status: ideas.StatusScript}
	require.NoError(t, database.DB.Create(idea).Error)

	image := &storyboard.SceneImage{
		IdeaID:     idea.ID,
		SceneIndex: 0,
		FullPrompt: "a prompt",
	}
	if withFile {
		rel, err := Media.Save("scene.png", []byte("png bytes"))
		require.NoError(t, err)
		image.ImageFile = &rel
	}
	require.NoError(t, database.DB.Create(image).Error)
	return image
}

func postJSON(t *testing.T, r *gin.Engine, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader([]byte(body)))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func TestGenerateSceneImage(t *testing.T) {
	t.Run("renders, stores the file and records the frame", func(t *testing.T) {
		r := setupRouter(t)
		idea := seedIdeaWithBreakdown(t)

		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte("fake png bytes"))
		}))
		t.Cleanup(srv.Close)
		Renderer = imagegen.NewClient(srv.URL, time.Second, zap.NewNop())

		rec := postJSON(t, r, "/ideas/1/scenes/0/image", `{"ratio":"16:9"}`)
		require.Equal(t, http.StatusCreated, rec.Code)

		var image storyboard.SceneImage
		require.NoError(t, database.DB.First(&image, "idea_id = ?", idea.ID).Error)
		assert.Contains(t, image.FullPrompt, "A knight rides at dawn")
		require.NotNil(t, image.ImageFile)

		data, err := os.ReadFile(Media.MediaPath(*image.ImageFile))
		require.NoError(t, err)
		assert.Equal(t, "fake png bytes", string(data))

		var logCount int64
		require.NoError(t, database.DB.Model(&ideas.Log{}).Where("idea_id = ?", idea.ID).Count(&logCount).Error)
		assert.EqualValues(t, 1, logCount)
	})

	t.Run("missing scene is rejected without mutation", func(t *testing.T) {
		r := setupRouter(t)
		seedIdeaWithBreakdown(t)
		Renderer = imagegen.NewClient("http://unused", time.Second, zap.NewNop())

		rec := postJSON(t, r, "/ideas/1/scenes/7/image", `{}`)
		require.Equal(t, http.StatusNotFound, rec.Code)

		var count int64
		require.NoError(t, database.DB.Model(&storyboard.SceneImage{}).Count(&count).Error)
		assert.EqualValues(t, 0, count)
	})

	t.Run("render failure is surfaced and nothing is stored", func(t *testing.T) {
		r := setupRouter(t)
		seedIdeaWithBreakdown(t)

		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, "overloaded", http.StatusServiceUnavailable)
		}))
		t.Cleanup(srv.Close)
		Renderer = imagegen.NewClient(srv.URL, time.Second, zap.NewNop())

		rec := postJSON(t, r, "/ideas/1/scenes/0/image", `{}`)
		require.Equal(t, http.StatusBadGateway, rec.Code)

		var count int64
		require.NoError(t, database.DB.Model(&storyboard.SceneImage{}).Count(&count).Error)
		assert.EqualValues(t, 0, count)
	})
}

func TestTrashSceneImage(t *testing.T) {
	t.Run("copies to trash before clearing the primary reference", func(t *testing.T) {
		r := setupRouter(t)
		image := seedImage(t, true)
		original := Media.MediaPath(*image.ImageFile)

		rec := postJSON(t, r, "/images/1/trash", "")
		require.Equal(t, http.StatusOK, rec.Code)

		var stored storyboard.SceneImage
		require.NoError(t, database.DB.First(&stored, "id = ?", image.ID).Error)
		assert.True(t, stored.IsDeleted)
		assert.Nil(t, stored.ImageFile)
		require.NotNil(t, stored.TrashFile)

		data, err := os.ReadFile(filepath.Join(Media.TrashRoot, *stored.TrashFile))
		require.NoError(t, err)
		assert.Equal(t, "png bytes", string(data))

		_, err = os.Stat(original)
		assert.True(t, os.IsNotExist(err))
	})

	t.Run("failed copy leaves the image recoverable", func(t *testing.T) {
		r := setupRouter(t)
		image := seedImage(t, true)

		// Point the trash root below a regular file so the copy cannot land.
		blocker := filepath.Join(t.TempDir(), "blocker")
		require.NoError(t, os.WriteFile(blocker, []byte("x"), 0o644))
		Media.TrashRoot = filepath.Join(blocker, "trash")

		rec := postJSON(t, r, "/images/1/trash", "")
		require.Equal(t, http.StatusInternalServerError, rec.Code)

		var stored storyboard.SceneImage
		require.NoError(t, database.DB.First(&stored, "id = ?", image.ID).Error)
		assert.False(t, stored.IsDeleted)
		require.NotNil(t, stored.ImageFile)

		_, err := os.Stat(Media.MediaPath(*stored.ImageFile))
		assert.NoError(t, err)
	})

	t.Run("missing file skips the copy and flips the flag", func(t *testing.T) {
		r := setupRouter(t)
		image := seedImage(t, false)

		rec := postJSON(t, r, "/images/1/trash", "")
		require.Equal(t, http.StatusOK, rec.Code)

		var stored storyboard.SceneImage
		require.NoError(t, database.DB.First(&stored, "id = ?", image.ID).Error)
		assert.True(t, stored.IsDeleted)
		assert.Nil(t, stored.TrashFile)
	})

	t.Run("trashing twice is a no-op", func(t *testing.T) {
		r := setupRouter(t)
		seedImage(t, false)

		require.Equal(t, http.StatusOK, postJSON(t, r, "/images/1/trash", "").Code)
		require.Equal(t, http.StatusOK, postJSON(t, r, "/images/1/trash", "").Code)

		var logCount int64
		require.NoError(t, database.DB.Model(&ideas.Log{}).Count(&logCount).Error)
		assert.EqualValues(t, 1, logCount)
	})
}
