package main

// panoramaFetcher fetches and decodes a panorama source. The browser
// viewer implements it over fetch and a DOM Image element, the native
// renderer over the filesystem, tests over in-memory fakes.
type panoramaFetcher interface {
	fetch(url string) (*panorama, error)
}

type loadResult struct {
	url  string
	pano *panorama
	err  error
}

// panoramaLoader runs decodes asynchronously and guards against stale
// completions: a result is only accepted if its URL still matches the most
// recently requested one, so switching panoramas mid-decode never renders
// an outdated image over a newer request.
type panoramaLoader struct {
	fetcher panoramaFetcher
	current string
	results chan loadResult
}

func newPanoramaLoader(f panoramaFetcher) *panoramaLoader {
	return &panoramaLoader{
		fetcher: f,
		results: make(chan loadResult, 1),
	}
}

// Results delivers completions to the owning event loop.
func (l *panoramaLoader) Results() <-chan loadResult {
	return l.results
}

func (l *panoramaLoader) load(url string) {
	l.current = url
	go func() {
		p, err := l.fetcher.fetch(url)
		l.results <- loadResult{url: url, pano: p, err: err}
	}()
}

// take filters a completion. ok is false for stale results, which must be
// discarded without touching the projector.
func (l *panoramaLoader) take(r loadResult) (*panorama, error, bool) {
	if r.url != l.current {
		return nil, nil, false
	}
	return r.pano, r.err, true
}
