// Package resolvers provides the concrete resolver implementations the task
// router dispatches to. In-process resolvers wrap the detection engine and
// data providers; ExecResolver and MQTTResolver delegate to external
// collaborators.
package resolvers

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/openathletics/flextime/core/model"
)

// ScheduleSource supplies the proposed schedules for a scheduling cycle.
type ScheduleSource interface {
	Schedules(ctx context.Context) (map[model.Sport][]model.ScheduledEvent, error)
}

// StaticScheduleSource serves a fixed in-memory schedule set.
type StaticScheduleSource struct {
	Events map[model.Sport][]model.ScheduledEvent
}

func (s StaticScheduleSource) Schedules(context.Context) (map[model.Sport][]model.ScheduledEvent, error) {
	return s.Events, nil
}

// FileScheduleSource reads schedules from a JSON file keyed by sport code.
// The file is re-read on every call so schedule edits are picked up without
// a restart.
type FileScheduleSource struct {
	Path string
}

func (s FileScheduleSource) Schedules(context.Context) (map[model.Sport][]model.ScheduledEvent, error) {
	raw, err := os.ReadFile(s.Path)
	if err != nil {
		return nil, fmt.Errorf("read schedules: %w", err)
	}
	var schedules map[model.Sport][]model.ScheduledEvent
	if err := json.Unmarshal(raw, &schedules); err != nil {
		return nil, fmt.Errorf("decode schedules: %w", err)
	}
	return schedules, nil
}
