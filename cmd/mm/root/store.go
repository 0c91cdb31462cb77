package root

import (
	"fmt"
	"strings"

	"momentum/internal/config"
	"momentum/internal/engine"
	"momentum/internal/storage"
)

func openBackend() (storage.Backend, func(), error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, err
	}
	if cfg.Backend == config.BackendFile {
		return storage.NewFileBackend(cfg.DataPath), func() {}, nil
	}
	backend, err := storage.OpenSQLite(cfg.DataPath)
	if err != nil {
		return nil, nil, err
	}
	cleanup := func() {
		_ = backend.Close()
	}
	return backend, cleanup, nil
}

// openService builds the store and engine and runs the recurrence pass, which
// happens once per invocation the same way the tracker runs it once per load.
func openService() (*engine.Service, func(), error) {
	backend, cleanup, err := openBackend()
	if err != nil {
		return nil, nil, err
	}
	st, err := storage.New(backend)
	if err != nil {
		cleanup()
		return nil, nil, err
	}
	svc := engine.NewService(st)
	if _, err := svc.ProcessRecurringTasks(); err != nil {
		cleanup()
		return nil, nil, err
	}
	return svc, cleanup, nil
}

// shortID renders the display form of an entity id.
func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

// resolveID matches a full id or a unique prefix against the given ids.
func resolveID(input string, ids []string) (string, error) {
	var matches []string
	for _, id := range ids {
		if id == input {
			return id, nil
		}
		if strings.HasPrefix(id, input) {
			matches = append(matches, id)
		}
	}
	switch len(matches) {
	case 1:
		return matches[0], nil
	case 0:
		return "", fmt.Errorf("no entry matches id %q", input)
	default:
		return "", fmt.Errorf("id %q is ambiguous (%d matches)", input, len(matches))
	}
}

func taskIDs(svc *engine.Service) []string {
	tasks := svc.Store().Tasks()
	ids := make([]string, len(tasks))
	for i := range tasks {
		ids[i] = tasks[i].ID
	}
	return ids
}

func habitIDs(svc *engine.Service) []string {
	habits := svc.Store().Habits()
	ids := make([]string, len(habits))
	for i := range habits {
		ids[i] = habits[i].ID
	}
	return ids
}

func projectIDs(svc *engine.Service) []string {
	projects := svc.Store().Projects()
	ids := make([]string, len(projects))
	for i := range projects {
		ids[i] = projects[i].ID
	}
	return ids
}

func rewardIDs(svc *engine.Service) []string {
	rewards := svc.Store().Rewards()
	ids := make([]string, len(rewards))
	for i := range rewards {
		ids[i] = rewards[i].ID
	}
	return ids
}
