package workerpool

import "logency/logerr"

func invalidPoolSize(size int) error {
	return logerr.InvalidArgument("worker pool size %d must be at least 1", size)
}

func poolClosed() error {
	return logerr.ResourceGone("worker pool is closed")
}
