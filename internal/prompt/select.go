package prompt

import (
	"context"
	"fmt"

	"github.com/cockroachdb/errors"

	"github.com/goliatone/go-cftypes/pkg/schema"
)

const pageSize = 15

// SelectContentTypes asks which content types to generate and returns their
// ids in schema order. Every content type is preselected; an empty selection
// is confirmed before it is returned as an error.
func SelectContentTypes(ctx context.Context, driver Driver, types []schema.ContentType) ([]string, error) {
	if driver == nil {
		return nil, errors.New("prompt: driver is required")
	}
	if len(types) == 0 {
		return nil, nil
	}

	options := make([]string, len(types))
	defaults := make([]int, len(types))
	for idx, ct := range types {
		options[idx] = optionLabel(ct)
		defaults[idx] = idx
	}

	for {
		picked, err := driver.MultiSelect(ctx, SelectConfig{
			Message:  "Content types to generate",
			Options:  options,
			Defaults: defaults,
			Help:     "Space toggles a content type, enter confirms.",
			PageSize: pageSize,
		})
		if err != nil {
			return nil, err
		}

		if len(picked) > 0 {
			ids := make([]string, 0, len(picked))
			for _, idx := range picked {
				if idx < 0 || idx >= len(types) {
					return nil, errors.Newf("prompt: selection index %d out of range", idx)
				}
				ids = append(ids, types[idx].ID())
			}
			return ids, nil
		}

		retry, err := driver.Confirm(ctx, ConfirmConfig{
			Message: "No content types selected. Choose again?",
			Default: true,
		})
		if err != nil {
			return nil, err
		}
		if !retry {
			return nil, errors.New("prompt: no content types selected")
		}
	}
}

func optionLabel(ct schema.ContentType) string {
	if ct.Name == "" || ct.Name == ct.ID() {
		return ct.ID()
	}
	return fmt.Sprintf("%s (%s)", ct.ID(), ct.Name)
}
