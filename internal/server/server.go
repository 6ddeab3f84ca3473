package server

import (
	"context"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"lectureiq/internal/domain"
	"lectureiq/internal/jobs"
	"lectureiq/internal/normalizer"
)

func (s *implServer) handleRoot(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"message": "LectureIQ API",
		"status":  "running",
	})
}

func (s *implServer) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":              "healthy",
		"service":             "LectureIQ API",
		"version":             "1.0.0",
		"processing_pipeline": "active",
		"storage":             "frontend (IndexedDB)",
	})
}

// handleUpload accepts a multipart lecture upload (title, video, optional
// slides PDF), runs the pipeline, and returns the complete normalized result.
// Pipeline failures still answer 200 with a failed payload so the frontend
// can store the partial record; only input validation answers 400.
func (s *implServer) handleUpload(c *gin.Context) {
	title := strings.TrimSpace(c.PostForm("title"))
	if title == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Title is required"})
		return
	}

	video, err := c.FormFile("video")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Video file is required"})
		return
	}

	lectureID := uuid.NewString()
	lectureDir := filepath.Join(s.cfg.Storage.UploadDir, lectureID)
	if err := os.MkdirAll(lectureDir, 0755); err != nil {
		s.logger.Error(c.Request.Context(), "Cannot create lecture dir %s: %v", lectureDir, err)
		c.JSON(http.StatusOK, failedResponse(lectureID, err))
		return
	}

	videoPath := filepath.Join(lectureDir, "video_"+filepath.Base(video.Filename))
	if err := c.SaveUploadedFile(video, videoPath); err != nil {
		s.logger.Error(c.Request.Context(), "Cannot save video for %s: %v", lectureID, err)
		c.JSON(http.StatusOK, failedResponse(lectureID, err))
		return
	}

	slidesPath := ""
	if slides, err := c.FormFile("slides"); err == nil {
		slidesPath = filepath.Join(lectureDir, "slides_"+filepath.Base(slides.Filename))
		if err := c.SaveUploadedFile(slides, slidesPath); err != nil {
			s.logger.Warn(c.Request.Context(), "Cannot save slides for %s, continuing without: %v", lectureID, err)
			slidesPath = ""
		}
	}

	job := s.registry.Submit(jobs.SubmitRequest{
		ID:         lectureID,
		Title:      title,
		VideoPath:  videoPath,
		SlidesPath: slidesPath,
		WorkDir:    lectureDir,
	})
	s.logger.Info(c.Request.Context(), "Lecture uploaded: %s (%s)", title, lectureID)

	if s.cfg.Server.Async {
		// The pipeline outlives this request, so it must not inherit the
		// request context.
		go s.orch.Run(context.Background(), job.ID)
		c.JSON(http.StatusOK, normalizer.ToResponse(job.ID, domain.StatusQueued, nil))
		return
	}

	s.orch.Run(context.Background(), job.ID)
	done, err := s.registry.Get(job.ID)
	if err != nil {
		c.JSON(http.StatusOK, failedResponse(lectureID, err))
		return
	}
	c.JSON(http.StatusOK, normalizer.ToResponse(done.ID, done.Status, done.Result))
}

func (s *implServer) handleLecture(c *gin.Context) {
	id := c.Param("id")
	job, err := s.registry.Get(id)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Lecture not found"})
		return
	}
	c.JSON(http.StatusOK, normalizer.ToResponse(job.ID, job.Status, job.Result))
}

func failedResponse(lectureID string, err error) domain.UploadResponse {
	msg := err.Error()
	return domain.UploadResponse{
		LectureID: lectureID,
		Status:    domain.ExternalFailed,
		Message:   "Processing failed",
		Error:     &msg,
	}
}
