package outcome

type ListConfig struct {
	op     string
	failed *bool
	limit  int
}

func (cfg *ListConfig) Clean() {
	if cfg.limit < 0 {
		cfg.limit = 0
	}
}

func (cfg *ListConfig) matches(rec Record) bool {
	if cfg.op != "" && rec.Op != cfg.op {
		return false
	}
	if cfg.failed != nil && rec.Ok == *cfg.failed {
		return false
	}
	return true
}

type ListOption func(*ListConfig)

// Only lists records of the given operation
func ListWithOp(op string) ListOption {
	return func(cfg *ListConfig) {
		cfg.op = op
	}
}

// Only lists Err records if failed is true, or only Ok records otherwise
func ListWithFailed(failed bool) ListOption {
	return func(cfg *ListConfig) {
		cfg.failed = &failed
	}
}

// Keeps only the newest n records, 0 for all
func ListWithLimit(n int) ListOption {
	return func(cfg *ListConfig) {
		cfg.limit = n
	}
}
