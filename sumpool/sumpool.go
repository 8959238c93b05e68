// Package sumpool hashes independent inputs in parallel. Each digest is
// computed by a single worker, so results never depend on scheduling.
package sumpool

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"

	"github.com/panjf2000/ants"

	"massnet.org/rsha/crypto/sha256"
	"massnet.org/rsha/errors"
	"massnet.org/rsha/logging"
	"massnet.org/rsha/massutil/ccache"
	"massnet.org/rsha/wire"
)

// Result is the outcome of hashing one file.
type Result struct {
	Path string
	Hash wire.Hash
	Err  error
}

type Pool struct {
	workers *ants.Pool
	cache   *ccache.CCache
}

// New creates a Pool running at most workers hashes at once. File digests are
// memoised in an LRU of cacheSize entries; zero disables the cache.
func New(workers, cacheSize int) (*Pool, error) {
	wp, err := ants.NewPool(workers)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrPoolCreate, "workers %d", workers)
	}
	p := &Pool{workers: wp}
	if cacheSize > 0 {
		p.cache = ccache.NewCCache(cacheSize)
	}
	logging.VPrint(logging.DEBUG, "sum pool created", logging.LogFormat{"workers": workers, "cache": cacheSize})
	return p, nil
}

// Close releases the workers. Tasks already submitted still complete.
func (p *Pool) Close() {
	p.workers.Release()
}

// run calls task(i) for every i in [0, n) on the workers and waits for all
// of them. Indices that could not be submitted get the submit error.
func (p *Pool) run(n int, task func(i int), failed func(i int, err error)) {
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		i := i
		wg.Add(1)
		err := p.workers.Submit(func() {
			defer wg.Done()
			task(i)
		})
		if err != nil {
			wg.Done()
			failed(i, submitError(err))
		}
	}
	wg.Wait()
}

func submitError(err error) error {
	if err == ants.ErrPoolClosed {
		return errors.Wrap(err, errors.ErrPoolClosed)
	}
	return errors.Wrap(err, errors.ErrPoolSubmit)
}

// SumBytes returns the digests of inputs in input order.
func (p *Pool) SumBytes(inputs [][]byte) ([]wire.Hash, error) {
	hashes := make([]wire.Hash, len(inputs))
	var (
		mu       sync.Mutex
		firstErr error
	)
	p.run(len(inputs), func(i int) {
		hashes[i] = wire.Sum(inputs[i])
	}, func(i int, err error) {
		mu.Lock()
		if firstErr == nil {
			firstErr = err
		}
		mu.Unlock()
	})
	if firstErr != nil {
		return nil, firstErr
	}
	return hashes, nil
}

// SumFiles hashes every file in paths, returning one Result per path in the
// same order. A path listed more than once is read once. A failure on one
// file does not stop the others.
func (p *Pool) SumFiles(paths []string) []Result {
	index := make(map[string]int, len(paths))
	var unique []string
	for _, path := range paths {
		if _, ok := index[path]; !ok {
			index[path] = len(unique)
			unique = append(unique, path)
		}
	}

	sums := make([]Result, len(unique))
	p.run(len(unique), func(i int) {
		sums[i] = p.sumFile(unique[i])
	}, func(i int, err error) {
		sums[i] = Result{Path: unique[i], Err: err}
	})

	results := make([]Result, len(paths))
	for i, path := range paths {
		results[i] = sums[index[path]]
	}
	return results
}

func (p *Pool) sumFile(path string) Result {
	res := Result{Path: path}

	f, err := os.Open(path)
	if err != nil {
		res.Err = errors.Wrap(err, errors.ErrOpenInput)
		return res
	}
	defer f.Close()

	key, err := cacheKey(f)
	if err != nil {
		res.Err = errors.Wrap(err, errors.ErrReadInput)
		return res
	}
	if p.cache != nil {
		if h, ok := p.cache.Get(key); ok {
			logging.VPrint(logging.TRACE, "digest cache hit", logging.LogFormat{"path": path})
			res.Hash = h
			return res
		}
	}

	h := sha256.New()
	n, err := io.Copy(h, f)
	if err != nil {
		res.Err = errors.Wrapf(err, errors.ErrReadInput, "read %s", path)
		return res
	}
	copy(res.Hash[:], h.Sum(nil))

	if p.cache != nil {
		p.cache.Add(key, res.Hash)
	}
	logging.VPrint(logging.DEBUG, "file hashed", logging.LogFormat{"path": path, "bytes": n})
	return res
}

// cacheKey identifies a file revision by absolute path, size and mtime.
func cacheKey(f *os.File) (string, error) {
	fi, err := f.Stat()
	if err != nil {
		return "", err
	}
	if fi.IsDir() {
		return "", fmt.Errorf("%s is a directory", f.Name())
	}
	abs, err := filepath.Abs(f.Name())
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%s|%d|%d", abs, fi.Size(), fi.ModTime().UnixNano()), nil
}
