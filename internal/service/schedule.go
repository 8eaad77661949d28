package service

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	ics "github.com/arran4/golang-ical"
	"github.com/xuri/excelize/v2"
	"gorm.io/gorm"

	"roster-backend/internal/cache"
	apperrors "roster-backend/internal/errors"
	"roster-backend/internal/logger"
	"roster-backend/internal/repository"
	"roster-backend/internal/timefmt"
)

// ScheduleService produces the combined staff schedule: assignments expanded
// with catalog shift times and the day's first-in / last-out punches. Results
// are cached in Redis when a cache client is configured.
type ScheduleService struct {
	repo      repository.ScheduleRepositoryInterface
	shiftRepo repository.ShiftAssignmentRepositoryInterface
	defRepo   repository.ShiftDefinitionRepositoryInterface
	cache     *cache.Client
	cacheTTL  time.Duration
}

// NewScheduleService creates a new schedule service. cacheClient may be nil.
func NewScheduleService(
	repo repository.ScheduleRepositoryInterface,
	shiftRepo repository.ShiftAssignmentRepositoryInterface,
	defRepo repository.ShiftDefinitionRepositoryInterface,
	cacheClient *cache.Client,
	cacheTTL time.Duration,
) *ScheduleService {
	return &ScheduleService{
		repo:      repo,
		shiftRepo: shiftRepo,
		defRepo:   defRepo,
		cache:     cacheClient,
		cacheTTL:  cacheTTL,
	}
}

// ScheduleEntryResponse is one row of the combined schedule. Timestamp fields
// hold the assignment date with the relevant time of day placed in a UTC
// container, or are empty when the source value is unknown.
type ScheduleEntryResponse struct {
	Code           string `json:"code"`
	Name           string `json:"name"`
	EnglishName    string `json:"englishName"`
	Department     string `json:"department"`
	Shift          string `json:"shift"`
	StartTime      string `json:"startTime,omitempty"`
	EndTime        string `json:"endTime,omitempty"`
	ClockStartTime string `json:"clockStartTime,omitempty"`
	ClockEndTime   string `json:"clockEndTime,omitempty"`
	Date           string `json:"date"`
}

// ScheduleListResponse represents the schedule for a date range
type ScheduleListResponse struct {
	Entries []ScheduleEntryResponse `json:"entries"`
	Total   int                     `json:"total"`
}

// List retrieves the combined schedule between two canonical dates
func (s *ScheduleService) List(ctx context.Context, start, end string) (*ScheduleListResponse, error) {
	startDate, err := timefmt.ParseDate(start)
	if err != nil {
		return nil, err
	}
	endDate, err := timefmt.ParseDate(end)
	if err != nil {
		return nil, err
	}
	if endDate.Before(startDate) {
		return nil, apperrors.ErrInvalidDateRange
	}

	cacheKey := fmt.Sprintf("schedule:%s:%s", start, end)
	var cached ScheduleListResponse
	if hit, err := s.cache.GetJSON(ctx, cacheKey, &cached); err != nil {
		logger.WithContext(ctx).Warnf("schedule cache read failed: %v", err)
	} else if hit {
		return &cached, nil
	}

	rows, err := s.repo.ListRange(startDate, endDate)
	if err != nil {
		return nil, fmt.Errorf("failed to list schedule: %w", err)
	}

	entries := make([]ScheduleEntryResponse, len(rows))
	for i, row := range rows {
		entries[i] = ScheduleEntryResponse{
			Code:           strings.TrimSpace(row.StaffCode),
			Name:           strings.TrimSpace(row.Name),
			EnglishName:    strings.TrimSpace(row.EnglishName),
			Department:     strings.TrimSpace(row.Department),
			Shift:          strings.TrimSpace(row.ShiftName),
			StartTime:      combineOrEmpty(row.Date, row.StartTime),
			EndTime:        combineOrEmpty(row.Date, row.EndTime),
			ClockStartTime: combineOrEmpty(row.Date, row.ClockIn),
			ClockEndTime:   combineOrEmpty(row.Date, row.ClockOut),
			Date:           timefmt.FormatDate(row.Date),
		}
	}

	response := &ScheduleListResponse{Entries: entries, Total: len(entries)}

	if err := s.cache.SetJSON(ctx, cacheKey, response, s.cacheTTL); err != nil {
		logger.WithContext(ctx).Warnf("schedule cache write failed: %v", err)
	}

	return response, nil
}

// ExportExcel renders the schedule for a date range as an .xlsx workbook
func (s *ScheduleService) ExportExcel(ctx context.Context, start, end string) (*bytes.Buffer, string, error) {
	listing, err := s.List(ctx, start, end)
	if err != nil {
		return nil, "", err
	}

	f := excelize.NewFile()
	defer f.Close()

	const sheet = "Schedule"
	idx, err := f.NewSheet(sheet)
	if err != nil {
		return nil, "", fmt.Errorf("failed to create sheet: %w", err)
	}
	f.SetActiveSheet(idx)
	f.DeleteSheet("Sheet1")

	headerStyle, _ := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 11},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"#4472C4"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
	})

	headers := []string{"Code", "Name", "English Name", "Department", "Shift", "Date", "Start", "End", "Clock In", "Clock Out"}
	for i, h := range headers {
		col, _ := excelize.ColumnNumberToName(i + 1)
		cell := col + "1"
		f.SetCellValue(sheet, cell, h)
		f.SetCellStyle(sheet, cell, cell, headerStyle)
		f.SetColWidth(sheet, col, col, 16)
	}

	for i, entry := range listing.Entries {
		row := i + 2
		values := []interface{}{
			entry.Code, entry.Name, entry.EnglishName, entry.Department, entry.Shift,
			entry.Date, entry.StartTime, entry.EndTime, entry.ClockStartTime, entry.ClockEndTime,
		}
		for j, v := range values {
			col, _ := excelize.ColumnNumberToName(j + 1)
			f.SetCellValue(sheet, fmt.Sprintf("%s%d", col, row), v)
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, "", fmt.Errorf("failed to write workbook: %w", err)
	}

	filename := fmt.Sprintf("schedule_%s_%s.xlsx", start, end)
	return buf, filename, nil
}

// Calendar renders one staff member's assignments between two dates as an
// iCalendar feed, one event per assignment using the catalog shift times.
// Assignments whose shift has no catalog entry become all-day events.
func (s *ScheduleService) Calendar(staffCode, start, end string) (string, error) {
	startDate, err := timefmt.ParseDate(start)
	if err != nil {
		return "", err
	}
	endDate, err := timefmt.ParseDate(end)
	if err != nil {
		return "", err
	}
	if endDate.Before(startDate) {
		return "", apperrors.ErrInvalidDateRange
	}

	assignments, err := s.shiftRepo.ListRange(strings.TrimSpace(staffCode), startDate, endDate)
	if err != nil {
		return "", fmt.Errorf("failed to list shifts: %w", err)
	}

	cal := ics.NewCalendar()
	cal.SetMethod(ics.MethodPublish)
	cal.SetProductId("-//roster-backend//staff shift calendar//EN")

	type shiftTimes struct {
		start, end string
	}
	defs := map[string]*shiftTimes{}
	for _, assignment := range assignments {
		shiftName := strings.TrimSpace(assignment.ShiftName)

		times, ok := defs[shiftName]
		if !ok {
			def, err := s.defRepo.GetByName(shiftName)
			switch {
			case err == nil:
				times = &shiftTimes{start: def.StartTime, end: def.EndTime}
			case errors.Is(err, gorm.ErrRecordNotFound):
				times = nil
			default:
				return "", fmt.Errorf("failed to get shift definition: %w", err)
			}
			defs[shiftName] = times
		}

		uid := fmt.Sprintf("%s-%s@roster-backend", strings.TrimSpace(assignment.StaffCode), timefmt.FormatDate(assignment.Date))
		event := cal.AddEvent(uid)
		event.SetSummary(fmt.Sprintf("Shift %s", shiftName))
		event.SetDtStampTime(time.Now().UTC())

		if times != nil {
			startTs, err := timefmt.Combine(assignment.Date, times.start)
			if err != nil {
				return "", err
			}
			endTs, err := timefmt.Combine(assignment.Date, times.end)
			if err != nil {
				return "", err
			}
			// Overnight shifts roll the end time into the next day.
			if !endTs.After(startTs) {
				endTs = endTs.AddDate(0, 0, 1)
			}
			event.SetStartAt(startTs)
			event.SetEndAt(endTs)
		} else {
			event.SetAllDayStartAt(assignment.Date)
			event.SetAllDayEndAt(assignment.Date.AddDate(0, 0, 1))
		}

		if note := strings.TrimSpace(assignment.Note); note != "" {
			event.SetDescription(note)
		}
	}

	return cal.Serialize(), nil
}

func combineOrEmpty(date time.Time, t *string) string {
	if t == nil || strings.TrimSpace(*t) == "" {
		return ""
	}
	ts, err := timefmt.Combine(date, *t)
	if err != nil {
		return ""
	}
	return ts.Format(time.RFC3339)
}
