package filter

import (
	"fmt"
	"net/url"
	"testing"
	"time"

	"github.com/google/uuid"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"charity-connect.com/charity-connect/internal/constants"
	model "charity-connect.com/charity-connect/internal/models"
)

func setupTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to connect database: %v", err)
	}

	err = db.AutoMigrate(&model.User{}, &model.Benefactor{}, &model.Charity{}, &model.Task{})
	if err != nil {
		t.Fatalf("failed to migrate database: %v", err)
	}

	sqlDB, _ := db.DB()
	sqlDB.SetMaxOpenConns(1)

	return db
}

type taskSpec struct {
	title  string
	state  constants.TaskState
	gender *constants.Gender
	date   *time.Time
	ageMin *int
	ageMax *int
}

func seedTasks(t *testing.T, db *gorm.DB, specs []taskSpec) {
	t.Helper()

	for _, spec := range specs {
		task := &model.Task{
			ID:           uuid.NewString(),
			CharityID:    "charity-1",
			Title:        spec.title,
			State:        spec.state,
			GenderLimit:  spec.gender,
			Date:         spec.date,
			AgeLimitFrom: spec.ageMin,
			AgeLimitTo:   spec.ageMax,
			Version:      1,
			CreatedAt:    time.Now().UTC(),
		}
		if err := db.Create(task).Error; err != nil {
			t.Fatalf("failed to seed task %s: %v", spec.title, err)
		}
	}
}

func titlesWith(t *testing.T, db *gorm.DB, params url.Values) map[string]bool {
	t.Helper()

	var tasks []model.Task
	err := db.Model(&model.Task{}).Scopes(Scope(params)).Find(&tasks).Error
	if err != nil {
		t.Fatalf("filtered query failed: %v", err)
	}

	titles := make(map[string]bool, len(tasks))
	for _, task := range tasks {
		titles[task.Title] = true
	}
	return titles
}

func intPtr(v int) *int                              { return &v }
func genderPtr(g constants.Gender) *constants.Gender { return &g }

func TestScope_StateAndGender(t *testing.T) {
	db := setupTestDB(t)
	seedTasks(t, db, []taskSpec{
		{title: "open for men", state: constants.StatePending, gender: genderPtr(constants.GenderMale)},
		{title: "open for women", state: constants.StatePending, gender: genderPtr(constants.GenderFemale)},
		{title: "open unrestricted", state: constants.StatePending},
		{title: "finished", state: constants.StateDone},
	})

	got := titlesWith(t, db, url.Values{"state": {"P"}})
	if len(got) != 3 || got["finished"] {
		t.Errorf("state filter: got %v", got)
	}

	got = titlesWith(t, db, url.Values{"gender": {"M"}})
	if len(got) != 1 || !got["open for men"] {
		t.Errorf("gender filter: got %v", got)
	}

	got = titlesWith(t, db, url.Values{"exclude_gender": {"M"}})
	if got["open for men"] || !got["open for women"] || !got["open unrestricted"] {
		t.Errorf("gender exclusion must keep unrestricted tasks: got %v", got)
	}
}

func TestScope_AgeRange(t *testing.T) {
	db := setupTestDB(t)
	seedTasks(t, db, []taskSpec{
		{title: "adults only", state: constants.StatePending, ageMin: intPtr(18), ageMax: intPtr(65)},
		{title: "teens", state: constants.StatePending, ageMin: intPtr(13), ageMax: intPtr(17)},
		{title: "no upper bound", state: constants.StatePending, ageMin: intPtr(18)},
		{title: "anyone", state: constants.StatePending},
	})

	got := titlesWith(t, db, url.Values{"age": {"30"}})
	for _, want := range []string{"adults only", "no upper bound", "anyone"} {
		if !got[want] {
			t.Errorf("age=30 should match %q, got %v", want, got)
		}
	}
	if got["teens"] {
		t.Error("age=30 must not match the teens task")
	}

	// A non-numeric age is not a recognized value and is ignored.
	got = titlesWith(t, db, url.Values{"age": {"thirty"}})
	if len(got) != 4 {
		t.Errorf("invalid age value should be ignored, got %v", got)
	}
}

func TestScope_TitleAndDate(t *testing.T) {
	db := setupTestDB(t)
	may := time.Date(2026, 5, 1, 0, 0, 0, 0, time.UTC)
	june := time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC)
	seedTasks(t, db, []taskSpec{
		{title: "garden cleanup", state: constants.StatePending, date: &may},
		{title: "garden planting", state: constants.StatePending, date: &june},
		{title: "kitchen duty", state: constants.StatePending},
	})

	got := titlesWith(t, db, url.Values{"title": {"garden"}})
	if len(got) != 2 || got["kitchen duty"] {
		t.Errorf("title filter: got %v", got)
	}

	got = titlesWith(t, db, url.Values{"date": {"2026-05-01"}})
	if len(got) != 1 || !got["garden cleanup"] {
		t.Errorf("date filter: got %v", got)
	}

	got = titlesWith(t, db, url.Values{"exclude_date": {"2026-05-01"}})
	if got["garden cleanup"] || !got["garden planting"] || !got["kitchen duty"] {
		t.Errorf("date exclusion must keep undated tasks: got %v", got)
	}
}

func TestScope_UnknownParamsIgnored(t *testing.T) {
	db := setupTestDB(t)
	seedTasks(t, db, []taskSpec{
		{title: "one", state: constants.StatePending},
		{title: "two", state: constants.StateDone},
	})

	got := titlesWith(t, db, url.Values{"sort": {"title"}, "limit": {"1"}})
	if len(got) != 2 {
		t.Errorf("unknown params must be ignored, got %v", got)
	}
}
