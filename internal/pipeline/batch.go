package pipeline

import "sync"

// BatchResult aggregates one Run over the configured inputs. Results
// and Errors together cover every input, in input order.
type BatchResult struct {
	Results []Result
	Errors  []error
}

// Run processes every configured input, at most Jobs at a time; a Jobs
// below 1 is treated as 1. A failing input never stops the others; its
// error is collected instead.
func (r *Runner) Run() *BatchResult {
	inputs := r.opts.Inputs
	results := make([]*Result, len(inputs))
	errs := make([]error, len(inputs))

	limit := r.opts.Jobs
	if limit < 1 {
		limit = 1
	}

	var wg sync.WaitGroup
	jobs := make(chan struct{}, limit)
	for i, input := range inputs {
		wg.Add(1)
		go func(i int, input string) {
			defer wg.Done()
			jobs <- struct{}{}
			defer func() { <-jobs }()

			res, err := r.ProcessFile(input)
			if err != nil {
				errs[i] = err
				return
			}
			results[i] = &res
		}(i, input)
	}
	wg.Wait()

	batch := &BatchResult{}
	for i := range inputs {
		if errs[i] != nil {
			batch.Errors = append(batch.Errors, errs[i])
			continue
		}
		batch.Results = append(batch.Results, *results[i])
	}
	return batch
}
