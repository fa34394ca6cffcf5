package menu

import (
	"errors"
	"fmt"
)

var ErrUnknownCategory = errors.New("unknown category")

// legacyMainCategory is what the dish API still sends for main courses
const legacyMainCategory = "main"

func ParseCategory(s string) (Category, error) {
	if s == legacyMainCategory {
		return MainCourse, nil
	}

	c := Category(s)
	if !c.Valid() {
		return "", fmt.Errorf("%w: %q", ErrUnknownCategory, s)
	}
	return c, nil
}
