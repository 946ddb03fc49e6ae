package sink

import "logency/logerr"

func errNilModule(name string) error {
	return logerr.InvalidArgument("sink %q: module must not be nil", name)
}

func poolGone(name string) error {
	return logerr.ResourceGone("sink %q: worker pool is gone", name)
}
