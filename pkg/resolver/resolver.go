// Package resolver locates the newest installed executable image and keeps
// the stable alias symlink pointing at it.
package resolver

import (
	"path"
	"path/filepath"
	"time"

	"github.com/arthur-debert/applaunch/pkg/errors"
	"github.com/arthur-debert/applaunch/pkg/logging"
	"github.com/arthur-debert/applaunch/pkg/types"
)

// Options configures a resolution run.
type Options struct {
	// Dir is the directory searched for executable images.
	Dir string

	// Pattern is the glob matched against entry names.
	Pattern string

	// Alias is the name of the stable symlink, created inside Dir.
	Alias string
}

// Resolve selects the newest image matching the pattern and makes the alias
// point at it. Candidates are ordered by modification time; equal times are
// broken by lexicographically last name, giving a deterministic total order.
//
// With no matching image the search directory is left untouched and a
// NO_IMAGE_FOUND error is returned. A failed symlink update is
// ALIAS_WRITE_FAILED.
func Resolve(fsys types.FS, opts Options) (*types.ResolveResult, error) {
	logger := logging.GetLogger("resolver")

	image, modTime, err := selectLatest(fsys, opts)
	if err != nil {
		return nil, err
	}

	aliasPath := filepath.Join(opts.Dir, opts.Alias)
	result := &types.ResolveResult{
		Image:     image,
		ModTime:   modTime,
		AliasPath: aliasPath,
	}

	if currentTarget(fsys, aliasPath, opts.Dir) == image {
		logger.Debug().Str("alias", aliasPath).Str("image", image).Msg("Alias already current")
		return result, nil
	}

	if err := replaceAlias(fsys, aliasPath, image); err != nil {
		return nil, errors.Wrapf(err, errors.ErrAliasWriteFail, "failed to point %s at %s", aliasPath, image)
	}
	result.Updated = true
	logger.Info().Str("alias", aliasPath).Str("image", image).Msg("Updated alias")
	return result, nil
}

// LatestImage reports the newest matching image without touching the alias,
// for read-only status queries.
func LatestImage(fsys types.FS, opts Options) (string, error) {
	image, _, err := selectLatest(fsys, opts)
	return image, err
}

// selectLatest scans the search directory and returns the winning image path
// and its modification time.
func selectLatest(fsys types.FS, opts Options) (string, time.Time, error) {
	logger := logging.GetLogger("resolver")

	entries, err := fsys.ReadDir(opts.Dir)
	if err != nil {
		return "", time.Time{}, errors.Wrapf(err, errors.ErrNoImageFound, "cannot read search directory %s", opts.Dir)
	}

	var (
		bestName string
		bestTime time.Time
	)
	for _, entry := range entries {
		if entry.IsDir() || entry.Name() == opts.Alias {
			continue
		}
		ok, err := path.Match(opts.Pattern, entry.Name())
		if err != nil {
			return "", time.Time{}, errors.Wrapf(err, errors.ErrInvalidInput, "invalid image pattern %q", opts.Pattern)
		}
		if !ok {
			continue
		}
		info, err := fsys.Stat(filepath.Join(opts.Dir, entry.Name()))
		if err != nil {
			// Entry vanished between readdir and stat; skip it.
			logger.Debug().Err(err).Str("entry", entry.Name()).Msg("Skipping unstattable candidate")
			continue
		}
		if newer(info.ModTime(), entry.Name(), bestTime, bestName) {
			bestName = entry.Name()
			bestTime = info.ModTime()
		}
	}

	if bestName == "" {
		return "", time.Time{}, errors.Newf(errors.ErrNoImageFound,
			"no image matching %q found in %s", opts.Pattern, opts.Dir)
	}
	return filepath.Join(opts.Dir, bestName), bestTime, nil
}

// newer reports whether candidate (t, name) orders after the current best.
func newer(t time.Time, name string, bestTime time.Time, bestName string) bool {
	if bestName == "" {
		return true
	}
	if !t.Equal(bestTime) {
		return t.After(bestTime)
	}
	return name > bestName
}

// currentTarget returns the alias's resolved target, or "" when the alias
// is absent, unreadable, or not a symlink.
func currentTarget(fsys types.FS, aliasPath, dir string) string {
	target, err := fsys.Readlink(aliasPath)
	if err != nil {
		return ""
	}
	if !filepath.IsAbs(target) {
		target = filepath.Join(dir, target)
	}
	return target
}

// replaceAlias swaps the alias atomically: the new symlink is created under
// a temporary name and renamed over the alias, so no invocation ever sees
// the alias missing.
func replaceAlias(fsys types.FS, aliasPath, image string) error {
	tmp := aliasPath + ".tmp"

	// A leftover temp link from an interrupted run must not fail the swap.
	if _, err := fsys.Lstat(tmp); err == nil {
		if err := fsys.Remove(tmp); err != nil {
			return err
		}
	}

	if err := fsys.Symlink(image, tmp); err != nil {
		return err
	}
	if err := fsys.Rename(tmp, aliasPath); err != nil {
		_ = fsys.Remove(tmp)
		return err
	}
	return nil
}
