package manager

import (
	"fmt"

	"logency/logerr"
)

func duplicateLogger(name string) error {
	return logerr.InvalidArgument("logger %q already exists", name)
}

func duplicateSink(name string) error {
	return logerr.InvalidArgument("sink %q already exists", name)
}

func missingLogger(name string) error {
	return logerr.InvalidArgument("no logger named %q", name)
}

func missingSink(name string) error {
	return logerr.InvalidArgument("no sink named %q", name)
}

func errorFromRecovery(r any, err error) error {
	if err != nil {
		return err
	}
	return fmt.Errorf("recovered panic: %v", r)
}
