package services

import (
	"errors"
	"testing"

	"institute-backend/models"
)

func pointTexts(points []models.ComputerLearningPoint) []string {
	out := make([]string, 0, len(points))
	for _, p := range points {
		out = append(out, p.Point)
	}
	return out
}

func TestComputerCoursePointOrderRoundTrip(t *testing.T) {
	svc := NewComputerCourseService(openTestDB(t))

	course := models.ComputerCourse{
		Title:       "DCA",
		FullName:    "Diploma in Computer Applications",
		Duration:    "6 months",
		Price:       "₹6,000",
		Description: "Basic computer skills course.",
	}
	if err := svc.Create(&course, []string{"p1", "p2", "p3"}); err != nil {
		t.Fatalf("create: %v", err)
	}

	got, err := svc.GetByID(course.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if len(got.LearningPoints) != 3 {
		t.Fatalf("expected 3 points, got %d", len(got.LearningPoints))
	}
	for i, want := range []string{"p1", "p2", "p3"} {
		p := got.LearningPoints[i]
		if p.Point != want || p.SortOrder != i+1 {
			t.Fatalf("position %d: got point=%q sortOrder=%d", i, p.Point, p.SortOrder)
		}
	}

	// full replace: no trace of the old list may remain
	replacement := []string{"q1", "q2"}
	updated, err := svc.Update(course.ID, CoursePatch{}, &replacement)
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if len(updated.LearningPoints) != 2 {
		t.Fatalf("expected 2 points after replace, got %d", len(updated.LearningPoints))
	}
	for i, want := range replacement {
		p := updated.LearningPoints[i]
		if p.Point != want || p.SortOrder != i+1 {
			t.Fatalf("after replace, position %d: got point=%q sortOrder=%d", i, p.Point, p.SortOrder)
		}
	}

	var count int64
	if err := svc.DB.Model(&models.ComputerLearningPoint{}).
		Where("course_id = ?", course.ID).Count(&count).Error; err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 2 {
		t.Fatalf("expected 2 stored points, found %d", count)
	}
}

func TestComputerCourseUpdateWithoutPointsKeepsList(t *testing.T) {
	svc := NewComputerCourseService(openTestDB(t))

	course := models.ComputerCourse{Title: "Tally", FullName: "Tally with GST", Duration: "3 months", Price: "₹4,500", Description: "Accounting with Tally."}
	if err := svc.Create(&course, []string{"accounts", "gst"}); err != nil {
		t.Fatalf("create: %v", err)
	}

	title := "Tally Prime"
	updated, err := svc.Update(course.ID, CoursePatch{Title: &title}, nil)
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated.Title != "Tally Prime" {
		t.Fatalf("title not updated: %q", updated.Title)
	}
	if got := pointTexts(updated.LearningPoints); len(got) != 2 || got[0] != "accounts" || got[1] != "gst" {
		t.Fatalf("points changed on nil replace: %v", got)
	}
}

func TestComputerCourseCascadeDelete(t *testing.T) {
	db := openTestDB(t)
	svc := NewComputerCourseService(db)

	course := models.ComputerCourse{Title: "BCA", FullName: "Bachelor of Computer Applications", Duration: "3 years", Price: "₹30,000/year", Description: "Degree program."}
	if err := svc.Create(&course, []string{"c", "java", "dbms"}); err != nil {
		t.Fatalf("create: %v", err)
	}

	if err := svc.Delete(course.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}

	var count int64
	if err := db.Model(&models.ComputerLearningPoint{}).
		Where("course_id = ?", course.ID).Count(&count).Error; err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 0 {
		t.Fatalf("expected 0 orphaned points, found %d", count)
	}
	if _, err := svc.GetByID(course.ID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound after delete, got %v", err)
	}
	if err := svc.Delete(course.ID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound on second delete, got %v", err)
	}
}

func TestTypingCourseReplaceAndCascade(t *testing.T) {
	db := openTestDB(t)
	svc := NewTypingCourseService(db)

	course := models.TypingCourse{Title: "English Typing", Duration: "3 months", Price: "₹2,000", Description: "Touch typing course."}
	if err := svc.Create(&course, []string{"touch typing", "speed drills"}); err != nil {
		t.Fatalf("create: %v", err)
	}

	replacement := []string{"home row", "speed drills", "accuracy"}
	updated, err := svc.Update(course.ID, CoursePatch{}, &replacement)
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if len(updated.LearningPoints) != 3 {
		t.Fatalf("expected 3 points, got %d", len(updated.LearningPoints))
	}
	for i, p := range updated.LearningPoints {
		if p.Point != replacement[i] || p.SortOrder != i+1 {
			t.Fatalf("position %d: got point=%q sortOrder=%d", i, p.Point, p.SortOrder)
		}
	}

	if err := svc.Delete(course.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	var count int64
	if err := db.Model(&models.TypingLearningPoint{}).
		Where("course_id = ?", course.ID).Count(&count).Error; err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 0 {
		t.Fatalf("expected 0 orphaned points, found %d", count)
	}
}

func TestCourseUpdateMissingID(t *testing.T) {
	svc := NewComputerCourseService(openTestDB(t))
	title := "anything"
	if _, err := svc.Update(42, CoursePatch{Title: &title}, nil); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
