package dispatch

import "logency/logerr"

func poolGone() error {
	return logerr.ResourceGone("dispatcher's worker pool is gone")
}
