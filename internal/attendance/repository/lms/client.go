package lms

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"campus-timetable/internal/attendance"
	repo "campus-timetable/internal/attendance/repository"
	"campus-timetable/internal/model"
	pkgLog "campus-timetable/pkg/log"
)

const recordCacheSize = 128

// Client is the HTTP wrapper for the LMS attendance REST API.
// Session records are cached per course with a TTL so repeated timetable
// rebuilds do not hammer the LMS.
type Client struct {
	l           pkgLog.Logger
	baseURL     string
	accessToken string
	httpClient  *http.Client
	recordCache *expirable.LRU[string, []attendance.Record]
}

// NewClient creates a new LMS client. cacheTTL bounds how stale cached
// session records may get; zero disables expiry-based invalidation.
func NewClient(l pkgLog.Logger, baseURL, accessToken string, cacheTTL time.Duration) *Client {
	return &Client{
		l:           l,
		baseURL:     baseURL,
		accessToken: accessToken,
		httpClient:  &http.Client{Timeout: 30 * time.Second},
		recordCache: expirable.NewLRU[string, []attendance.Record](recordCacheSize, nil, cacheTTL),
	}
}

// ListCourses fetches the enrolled courses via GET /api/v1/courses.
func (c *Client) ListCourses(ctx context.Context) ([]model.Course, error) {
	url := fmt.Sprintf("%s/api/v1/courses", c.baseURL)

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build list courses request: %w", err)
	}
	httpReq.Header.Set("Authorization", fmt.Sprintf("Bearer %s", c.accessToken))

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("failed to call LMS courses API: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		raw, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("LMS courses API error %d: %s", resp.StatusCode, string(raw))
	}

	var listResp struct {
		Courses []courseDTO `json:"courses"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&listResp); err != nil {
		return nil, fmt.Errorf("failed to decode LMS courses response: %w", err)
	}

	courses := make([]model.Course, 0, len(listResp.Courses))
	for _, dto := range listResp.Courses {
		courses = append(courses, model.Course{
			ID:   dto.ID,
			Code: dto.Code,
			Name: dto.Name,
		})
	}
	return courses, nil
}

// ListSessionRecords fetches the raw attendance log for one course via
// GET /api/v1/courses/{id}/attendance, serving from cache when possible.
func (c *Client) ListSessionRecords(ctx context.Context, opt repo.ListSessionRecordsOptions) ([]attendance.Record, error) {
	if !opt.BypassCache {
		if cached, ok := c.recordCache.Get(opt.CourseID); ok {
			return cached, nil
		}
	}

	url := fmt.Sprintf("%s/api/v1/courses/%s/attendance", c.baseURL, opt.CourseID)

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build attendance request: %w", err)
	}
	httpReq.Header.Set("Authorization", fmt.Sprintf("Bearer %s", c.accessToken))

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("failed to call LMS attendance API: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		raw, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("LMS attendance API error %d: %s", resp.StatusCode, string(raw))
	}

	var listResp struct {
		Sessions []sessionDTO `json:"sessions"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&listResp); err != nil {
		return nil, fmt.Errorf("failed to decode LMS attendance response: %w", err)
	}

	records := make([]attendance.Record, 0, len(listResp.Sessions))
	for _, dto := range listResp.Sessions {
		records = append(records, attendance.Record{
			DateText:    dto.DateText,
			Description: dto.Description,
			Status:      dto.Status,
		})
	}

	c.recordCache.Add(opt.CourseID, records)
	c.l.Debugf(ctx, "cached %d attendance records for course %s", len(records), opt.CourseID)
	return records, nil
}

// ---- Response types scoped to this package ----

type courseDTO struct {
	ID   string `json:"id"`
	Code string `json:"code"`
	Name string `json:"name"`
}

type sessionDTO struct {
	DateText    string `json:"dateText"`
	Description string `json:"description"`
	Status      string `json:"status"`
}
