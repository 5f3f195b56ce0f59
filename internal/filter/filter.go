// Package filter narrows a visibility-resolved task query with
// caller-supplied parameters. The recognized parameter names and the column
// each one compares against form a fixed table owned here; query parameters
// outside the table are ignored.
package filter

import (
	"net/url"
	"strconv"
	"time"

	"gorm.io/gorm"
)

type Kind int

const (
	// Equals matches the column exactly.
	Equals Kind = iota
	// Contains does a substring match on the column.
	Contains
	// Date parses the value as YYYY-MM-DD and matches the column exactly.
	Date
	// AgeRange checks the value against the task's inclusive age bounds;
	// a null bound passes.
	AgeRange
)

type Rule struct {
	Param  string
	Column string
	Kind   Kind
}

var filteringRules = []Rule{
	{Param: "state", Column: "state", Kind: Equals},
	{Param: "gender", Column: "gender_limit", Kind: Equals},
	{Param: "date", Column: "date", Kind: Date},
	{Param: "title", Column: "title", Kind: Contains},
	{Param: "age", Kind: AgeRange},
}

var excludingRules = []Rule{
	{Param: "exclude_state", Column: "state", Kind: Equals},
	{Param: "exclude_gender", Column: "gender_limit", Kind: Equals},
	{Param: "exclude_date", Column: "date", Kind: Date},
}

const dateLayout = "2006-01-02"

// Scope builds a gorm scope applying every recognized filter present in
// params. Inclusion rules AND together; exclusion rules remove matches and
// keep rows where the column is null.
func Scope(params url.Values) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		for _, rule := range filteringRules {
			value := params.Get(rule.Param)
			if value == "" {
				continue
			}
			db = include(db, rule, value)
		}
		for _, rule := range excludingRules {
			value := params.Get(rule.Param)
			if value == "" {
				continue
			}
			db = exclude(db, rule, value)
		}
		return db
	}
}

func include(db *gorm.DB, rule Rule, value string) *gorm.DB {
	switch rule.Kind {
	case Equals:
		return db.Where(rule.Column+" = ?", value)
	case Contains:
		return db.Where(rule.Column+" LIKE ?", "%"+value+"%")
	case Date:
		date, err := time.Parse(dateLayout, value)
		if err != nil {
			return db
		}
		return db.Where(rule.Column+" = ?", date)
	case AgeRange:
		age, err := strconv.Atoi(value)
		if err != nil {
			return db
		}
		return db.Where(
			"(age_limit_from IS NULL OR age_limit_from <= ?) AND (age_limit_to IS NULL OR age_limit_to >= ?)",
			age, age,
		)
	}
	return db
}

func exclude(db *gorm.DB, rule Rule, value string) *gorm.DB {
	switch rule.Kind {
	case Equals:
		return db.Where("("+rule.Column+" IS NULL OR "+rule.Column+" <> ?)", value)
	case Date:
		date, err := time.Parse(dateLayout, value)
		if err != nil {
			return db
		}
		return db.Where("("+rule.Column+" IS NULL OR "+rule.Column+" <> ?)", date)
	}
	return db
}
