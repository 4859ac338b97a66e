package request

import (
	"errors"
	"io"
	"math"
	"regexp"
	"strconv"
	"strings"

	"movie-api/pkg/apperr"
	"movie-api/pkg/utils"

	"github.com/goccy/go-json"
)

const invalidInteger = "A valid integer is required"

var trailingZeroFraction = regexp.MustCompile(`\.0*$`)

// ReviewRequest is the payload for both POST (create) and PUT (full replace).
type ReviewRequest struct {
	Content string `json:"content" validate:"required,max=500"`
	Rating  int    `json:"rating" validate:"required,min=1,max=10"`
}

// reviewPayload is the wire shape. rating may arrive as a number or a
// numeric string.
type reviewPayload struct {
	Content string `json:"content"`
	Rating  any    `json:"rating"`
}

// Validate returns an *apperr.ValidationError when a field constraint fails.
func (r ReviewRequest) Validate() error {
	if errs := utils.ValidateStruct(r); len(errs) > 0 {
		return apperr.NewValidationError(errs)
	}
	return nil
}

// DecodeReviewRequest parses a review payload without checking field
// constraints; call Validate for that. Malformed JSON and wrongly typed
// fields are reported as validation errors.
func DecodeReviewRequest(body io.Reader) (*ReviewRequest, error) {
	var payload reviewPayload
	if err := json.NewDecoder(body).Decode(&payload); err != nil {
		var typeErr *json.UnmarshalTypeError
		if errors.As(err, &typeErr) && typeErr.Field != "" {
			return nil, apperr.FieldError(typeErr.Field, "Invalid type, expected "+typeErr.Type.String())
		}
		return nil, apperr.FieldError("body", "Invalid JSON body")
	}

	rating, err := parseRating(payload.Rating)
	if err != nil {
		return nil, err
	}

	return &ReviewRequest{Content: payload.Content, Rating: rating}, nil
}

// parseRating accepts integral numbers and numeric strings such as "7" or
// "7.0". A missing or null rating decodes to 0 and is caught by Validate.
func parseRating(value any) (int, error) {
	switch v := value.(type) {
	case nil:
		return 0, nil
	case float64:
		if v != math.Trunc(v) || v > math.MaxInt32 || v < math.MinInt32 {
			return 0, apperr.FieldError("rating", invalidInteger)
		}
		return int(v), nil
	case string:
		s := trailingZeroFraction.ReplaceAllString(strings.TrimSpace(v), "")
		n, err := strconv.Atoi(s)
		if err != nil {
			return 0, apperr.FieldError("rating", invalidInteger)
		}
		return n, nil
	default:
		return 0, apperr.FieldError("rating", invalidInteger)
	}
}
