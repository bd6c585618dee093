package store

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/rs/zerolog"
	"github.com/spf13/afero"

	"github.com/tdmtools/spanline/pkg/errors"
	"github.com/tdmtools/spanline/pkg/logging"
	"github.com/tdmtools/spanline/pkg/types"
)

const (
	attrHardwareID = "hardware_id"
	attrLocation   = "location"
	attrSpanType   = "spantype"
)

// Sysfs is the attribute store backed by the driver's sysfs tree
type Sysfs struct {
	fs     afero.Fs
	root   string
	logger zerolog.Logger
}

// NewSysfs creates a store over the OS filesystem rooted at root
func NewSysfs(root string) *Sysfs {
	return NewSysfsFS(afero.NewOsFs(), root)
}

// NewSysfsFS creates a store over an arbitrary filesystem. Tests use this
// with an afero MemMapFs.
func NewSysfsFS(fsys afero.Fs, root string) *Sysfs {
	return &Sysfs{
		fs:     fsys,
		root:   root,
		logger: logging.GetLogger("store.sysfs"),
	}
}

// EnumerateDevices returns a snapshot of every device directory under the
// store root, in lexical (discovery) order, with spans populated.
func (s *Sysfs) EnumerateDevices() ([]*types.Device, error) {
	entries, err := afero.ReadDir(s.fs, s.root)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrDeviceEnum,
			"device store unavailable at %s (is the driver loaded?)", s.root)
	}

	var devices []*types.Device
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		dev := &types.Device{
			Name: entry.Name(),
			Path: filepath.Join(s.root, entry.Name()),
		}
		dev.HardwareID = s.readAttr(dev.Path, attrHardwareID)
		dev.Location = s.readAttr(dev.Path, attrLocation)

		spans, err := s.readSpans(dev.Path)
		if err != nil {
			return nil, err
		}
		dev.Spans = spans

		s.logger.Debug().
			Str("device", dev.Name).
			Str("hardwareId", dev.HardwareID).
			Str("location", dev.Location).
			Int("spanCount", len(dev.Spans)).
			Msg("Discovered device")
		devices = append(devices, dev)
	}

	return devices, nil
}

// ReadSpanType reads the current live type of one span
func (s *Sysfs) ReadSpanType(dev *types.Device, span int) (types.LineType, error) {
	spans, err := s.readSpans(dev.Path)
	if err != nil {
		return "", err
	}
	for _, sp := range spans {
		if sp.Number == span {
			return sp.Type, nil
		}
	}
	return "", errors.Newf(errors.ErrDeviceRead,
		"device %s has no span %d", dev.Name, span)
}

// WriteSpanType assigns a new line type to one span by rewriting the
// device's spantype attribute
func (s *Sysfs) WriteSpanType(dev *types.Device, span int, t types.LineType) error {
	if !t.Assignable() {
		return errors.Newf(errors.ErrInvalidOption,
			"cannot assign line type %q", t)
	}

	path := filepath.Join(dev.Path, attrSpanType)
	data, err := afero.ReadFile(s.fs, path)
	if err != nil {
		return errors.Wrapf(err, errors.ErrDeviceWrite,
			"device %s: cannot read %s", dev.Name, attrSpanType)
	}

	lines := strings.Split(strings.TrimRight(string(data), "\n"), "\n")
	prefix := strconv.Itoa(span) + ":"
	found := false
	for i, line := range lines {
		if strings.HasPrefix(strings.TrimSpace(line), prefix) {
			lines[i] = fmt.Sprintf("%d:%s", span, t)
			found = true
			break
		}
	}
	if !found {
		return errors.Newf(errors.ErrDeviceWrite,
			"device %s has no span %d", dev.Name, span)
	}

	out := strings.Join(lines, "\n") + "\n"
	if err := afero.WriteFile(s.fs, path, []byte(out), 0644); err != nil {
		return errors.Wrapf(err, errors.ErrDeviceWrite,
			"device %s: span %d write rejected", dev.Name, span)
	}

	s.logger.Info().
		Str("device", dev.Name).
		Int("span", span).
		Str("type", string(t)).
		Msg("Assigned span type")
	return nil
}

// readAttr returns the trimmed content of an optional attribute file, or
// the empty string when the attribute is absent
func (s *Sysfs) readAttr(devPath, name string) string {
	data, err := afero.ReadFile(s.fs, filepath.Join(devPath, name))
	if err != nil {
		return ""
	}
	return strings.TrimSpace(string(data))
}

// readSpans parses the spantype attribute. A missing attribute means the
// device exposes no spans.
func (s *Sysfs) readSpans(devPath string) ([]types.Span, error) {
	data, err := afero.ReadFile(s.fs, filepath.Join(devPath, attrSpanType))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, errors.Wrapf(err, errors.ErrDeviceEnum,
			"cannot read %s for %s", attrSpanType, devPath)
	}

	var spans []types.Span
	for _, line := range strings.Split(string(data), "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		numStr, tag, ok := strings.Cut(line, ":")
		if !ok {
			s.logger.Warn().
				Str("device", devPath).
				Str("line", line).
				Msg("Skipping malformed spantype line")
			continue
		}
		num, err := strconv.Atoi(strings.TrimSpace(numStr))
		if err != nil {
			s.logger.Warn().
				Str("device", devPath).
				Str("line", line).
				Msg("Skipping spantype line with non-numeric span")
			continue
		}
		spans = append(spans, types.Span{
			Number: num,
			Type:   types.LineTypeFromTag(strings.TrimSpace(tag)),
		})
	}
	return spans, nil
}
