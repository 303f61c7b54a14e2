package configs

// Provision controls how a run is driven.
type Provision struct {
	// PlanFile is an optional YAML plan. When empty the built-in example
	// plan is used.
	PlanFile string `env:"PLAN_FILE"`
	// ParallelAttach creates keywords and product ads concurrently once the
	// ad group exists.
	ParallelAttach bool `env:"PARALLEL_ATTACH" envDefault:"false"`
}
