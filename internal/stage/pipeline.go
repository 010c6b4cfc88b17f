package stage

import "context"

// Pipeline lists the stages of a run in execution order.
var Pipeline = []string{
	openInputStage,
	aggregateStage,
	sortKeysStage,
	renderStage,
}

// RunStages executes the provided list of stage names in order, stopping at
// the first error.
func RunStages(ctx context.Context, in Envelope, stages []string, deps Deps) (Envelope, error) {
	out := in
	var err error
	for _, name := range stages {
		out, err = Run(ctx, name, out, deps)
		if err != nil {
			return Envelope{}, err
		}
	}
	return out, nil
}
