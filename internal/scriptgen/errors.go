package scriptgen

import "errors"

var (
	// ErrGenerationUnreachable covers network failures, timeouts and non-2xx
	// answers from the generation service. State must not be mutated.
	ErrGenerationUnreachable = errors.New("generation service unreachable")

	// ErrMalformedOutput means a response arrived but was not valid JSON.
	ErrMalformedOutput = errors.New("generation returned invalid JSON")

	// ErrPersistence covers any failure inside the breakdown commit
	// transaction. The whole unit rolls back.
	ErrPersistence = errors.New("saving breakdown failed")
)
