package checks

import (
	"context"
	"errors"
	"io/fs"

	"data-exporter/core/unreal"
)

// ObjectGetter loads game objects by identifier.
type ObjectGetter interface {
	Get(ctx context.Context, identifier unreal.ObjectIdentifier) (*unreal.Object, error)
}

// CheckInput returns the object paths of the required objects the input dump lacks.
// Any failure other than a missing file or entry aborts the check.
func CheckInput(ctx context.Context, objects ObjectGetter, required []unreal.ObjectIdentifier) ([]string, error) {
	missing := []string{}
	for _, identifier := range required {
		_, err := objects.Get(ctx, identifier)
		switch {
		case err == nil:
		case errors.Is(err, fs.ErrNotExist), errors.Is(err, unreal.ErrObjectNotFound):
			missing = append(missing, identifier.ObjectPath)
		default:
			return nil, err
		}
	}
	return missing, nil
}
