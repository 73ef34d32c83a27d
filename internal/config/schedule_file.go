package config

import (
	"errors"
	"fmt"
	"os"
	"regexp"

	"gopkg.in/yaml.v3"
)

var (
	ErrScheduleNotFound = errors.New("schedule file not found")
	ErrScheduleParsing  = errors.New("schedule file parsing failed")
)

// DefaultScheduleFile is looked up in the working directory when
// WARDEN_CONFIG is not set.
const DefaultScheduleFile = "warden.yml"

var timeOfDay = regexp.MustCompile(`^([01][0-9]|2[0-3]):[0-5][0-9]$`)

// ScheduleFile is the optional on-disk override for the notification
// schedule.
type ScheduleFile struct {
	NotifyTimes []string `yaml:"notify_times"`
}

// Validate checks every entry is a HH:MM wall-clock time.
func (s *ScheduleFile) Validate() error {
	seen := make(map[string]struct{}, len(s.NotifyTimes))
	for _, t := range s.NotifyTimes {
		if !timeOfDay.MatchString(t) {
			return fmt.Errorf("invalid notify time %q, want HH:MM", t)
		}
		if _, dup := seen[t]; dup {
			return fmt.Errorf("duplicate notify time %q", t)
		}
		seen[t] = struct{}{}
	}
	return nil
}

// LoadScheduleFile loads and parses the warden.yml schedule override. A
// missing file is not an error: the built-in defaults apply.
func LoadScheduleFile(path string) (*ScheduleFile, error) {
	explicit := path != ""
	if !explicit {
		path = DefaultScheduleFile
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			if explicit {
				return nil, fmt.Errorf("%w: %s", ErrScheduleNotFound, path)
			}
			return &ScheduleFile{}, nil
		}
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	var schedule ScheduleFile
	if err := yaml.Unmarshal(data, &schedule); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScheduleParsing, err)
	}
	if err := schedule.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScheduleParsing, err)
	}
	return &schedule, nil
}
