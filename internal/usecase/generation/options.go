package generation

// Option -.
type Option func(*Worker)

// ScratchRoot is the directory that holds per-highlight working directories.
func ScratchRoot(dir string) Option {
	return func(w *Worker) {
		w.scratchRoot = dir
	}
}

// FetchParallelism bounds concurrent photo downloads for one highlight.
func FetchParallelism(n int) Option {
	return func(w *Worker) {
		if n > 0 {
			w.fetchParallelism = n
		}
	}
}

func NormalizePhotos(enabled bool) Option {
	return func(w *Worker) {
		w.normalize = enabled
	}
}
