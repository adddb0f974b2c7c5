// Package validation wraps go-playground/validator so that every schema
// failure surfaces as a structured list of {path, message} issues instead of
// a single opaque error. Per-field rules live as struct tags on the DTOs;
// cross-field rules are registered here as struct-level validations.
package validation

import (
	"fmt"
	"reflect"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/keeperbase/keeperbase/internal/dto"
)

// Error carries the full issue list for a rejected payload.
type Error struct {
	Issues []dto.Issue
}

func (e *Error) Error() string {
	if len(e.Issues) == 0 {
		return "validation failed"
	}
	parts := make([]string, len(e.Issues))
	for i, issue := range e.Issues {
		parts[i] = issue.Path + ": " + issue.Message
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

var timeRe = regexp.MustCompile(`^([01]\d|2[0-3]):[0-5]\d(:[0-5]\d)?$`)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	// Report issue paths using json field names, matching the wire format.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	v.RegisterValidation("timestr", func(fl validator.FieldLevel) bool {
		return timeRe.MatchString(fl.Field().String())
	})

	v.RegisterStructValidation(createStatisticRules, dto.CreateStatisticRequest{})
	v.RegisterStructValidation(updateStatisticRules, dto.UpdateStatisticRequest{})

	return v
}

func createStatisticRules(sl validator.StructLevel) {
	req := sl.Current().Interface().(dto.CreateStatisticRequest)
	if req.CleanSheets > req.MatchesPlayed {
		sl.ReportError(req.CleanSheets, "clean_sheets", "CleanSheets", "ltefield_matches", "")
	}
	if req.PenaltiesSaved > req.PenaltiesFaced {
		sl.ReportError(req.PenaltiesSaved, "penalties_saved", "PenaltiesSaved", "ltefield_faced", "")
	}
}

// updateStatisticRules only fires when both sides of an invariant appear in
// the payload; the service re-checks the merged row before persisting.
func updateStatisticRules(sl validator.StructLevel) {
	req := sl.Current().Interface().(dto.UpdateStatisticRequest)
	if req.CleanSheets != nil && req.MatchesPlayed != nil && *req.CleanSheets > *req.MatchesPlayed {
		sl.ReportError(req.CleanSheets, "clean_sheets", "CleanSheets", "ltefield_matches", "")
	}
	if req.PenaltiesSaved != nil && req.PenaltiesFaced != nil && *req.PenaltiesSaved > *req.PenaltiesFaced {
		sl.ReportError(req.PenaltiesSaved, "penalties_saved", "PenaltiesSaved", "ltefield_faced", "")
	}
}

// Check runs the registered rules for the given DTO and returns nil or a
// *Error listing every violated constraint.
func Check(payload interface{}) error {
	err := validate.Struct(payload)
	if err == nil {
		return nil
	}

	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return &Error{Issues: []dto.Issue{{Path: "", Message: "invalid payload"}}}
	}

	issues := make([]dto.Issue, 0, len(verrs))
	for _, fe := range verrs {
		issues = append(issues, dto.Issue{
			Path:    fieldPath(fe),
			Message: message(fe),
		})
	}
	return &Error{Issues: issues}
}

// StatisticInvariants checks the season-total invariants against a fully
// merged row. Used on updates where the payload alone cannot prove them.
func StatisticInvariants(matchesPlayed, cleanSheets, penaltiesFaced, penaltiesSaved int) error {
	var issues []dto.Issue
	if cleanSheets > matchesPlayed {
		issues = append(issues, dto.Issue{
			Path:    "clean_sheets",
			Message: "must not exceed matches_played",
		})
	}
	if penaltiesSaved > penaltiesFaced {
		issues = append(issues, dto.Issue{
			Path:    "penalties_saved",
			Message: "must not exceed penalties_faced",
		})
	}
	if len(issues) > 0 {
		return &Error{Issues: issues}
	}
	return nil
}

// fieldPath strips the top-level struct name so "CreateTeamRequest.name"
// reports as "name" and nested slices keep their index segments.
func fieldPath(fe validator.FieldError) string {
	ns := fe.Namespace()
	if idx := strings.Index(ns, "."); idx >= 0 {
		return ns[idx+1:]
	}
	return fe.Field()
}

func message(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "email":
		return "must be a valid email address"
	case "min":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("must be at least %s characters", fe.Param())
		}
		if fe.Kind() == reflect.Slice {
			return fmt.Sprintf("must contain at least %s items", fe.Param())
		}
		return fmt.Sprintf("must be at least %s", fe.Param())
	case "max":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("must be at most %s characters", fe.Param())
		}
		return fmt.Sprintf("must be at most %s", fe.Param())
	case "oneof":
		return "must be one of: " + strings.Join(strings.Fields(fe.Param()), ", ")
	case "datetime":
		return "must be a valid date in YYYY-MM-DD format"
	case "timestr":
		return "must be a valid time in HH:MM or HH:MM:SS format"
	case "ltefield_matches":
		return "must not exceed matches_played"
	case "ltefield_faced":
		return "must not exceed penalties_faced"
	default:
		return "is invalid"
	}
}
