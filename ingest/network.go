// SPDX-License-Identifier: MIT

package ingest

// Network is the document form of a reaction network.
// Field tags serve both YAML (yaml.v3) and CUE (json-style decode).
type Network struct {
	ID           string        `yaml:"id,omitempty" json:"id,omitempty"`
	Species      []Species     `yaml:"species" json:"species"`
	Parameters   []Parameter   `yaml:"parameters,omitempty" json:"parameters,omitempty"`
	Compartments []Compartment `yaml:"compartments,omitempty" json:"compartments,omitempty"`
	Functions    []Function    `yaml:"functions,omitempty" json:"functions,omitempty"`
	Reactions    []Reaction    `yaml:"reactions" json:"reactions"`
}

// Species is one species entry.
type Species struct {
	ID                   string   `yaml:"id" json:"id"`
	Name                 string   `yaml:"name,omitempty" json:"name,omitempty"`
	InitialConcentration float64  `yaml:"initial_concentration,omitempty" json:"initial_concentration,omitempty"`
	Compartment          string   `yaml:"compartment,omitempty" json:"compartment,omitempty"`
	Charge               float64  `yaml:"charge,omitempty" json:"charge,omitempty"`
	Annotations          []string `yaml:"annotations,omitempty" json:"annotations,omitempty"`
}

// Parameter is a global or local parameter entry.
type Parameter struct {
	ID    string  `yaml:"id" json:"id"`
	Value float64 `yaml:"value" json:"value"`
}

// Compartment is one compartment entry; Size defaults to 1.
type Compartment struct {
	ID   string   `yaml:"id" json:"id"`
	Size *float64 `yaml:"size,omitempty" json:"size,omitempty"`
}

// Function is a named formula.
type Function struct {
	ID      string `yaml:"id" json:"id"`
	Formula string `yaml:"formula" json:"formula"`
}

// Reference is a species reference; Stoichiometry defaults to 1.
type Reference struct {
	Species       string   `yaml:"species" json:"species"`
	Stoichiometry *float64 `yaml:"stoichiometry,omitempty" json:"stoichiometry,omitempty"`
}

// Constant is a rate constant: a symbol, a value, or both.
type Constant struct {
	Symbol string   `yaml:"symbol,omitempty" json:"symbol,omitempty"`
	Value  *float64 `yaml:"value,omitempty" json:"value,omitempty"`
}

// ConstantPair holds the forward and reverse constants of one kind.
type ConstantPair struct {
	Forward *Constant `yaml:"forward,omitempty" json:"forward,omitempty"`
	Reverse *Constant `yaml:"reverse,omitempty" json:"reverse,omitempty"`
}

// Reaction is one reaction entry.
type Reaction struct {
	ID              string        `yaml:"id" json:"id"`
	Reversible      bool          `yaml:"reversible,omitempty" json:"reversible,omitempty"`
	KineticLaw      string        `yaml:"kinetic_law,omitempty" json:"kinetic_law,omitempty"`
	KineticLawType  string        `yaml:"kinetic_law_type,omitempty" json:"kinetic_law_type,omitempty"`
	Reactants       []Reference   `yaml:"reactants,omitempty" json:"reactants,omitempty"`
	Products        []Reference   `yaml:"products,omitempty" json:"products,omitempty"`
	LocalParameters []Parameter   `yaml:"local_parameters,omitempty" json:"local_parameters,omitempty"`
	Kinetic         *ConstantPair `yaml:"kinetic,omitempty" json:"kinetic,omitempty"`
	Thermo          *ConstantPair `yaml:"thermo,omitempty" json:"thermo,omitempty"`
	Kappa           float64       `yaml:"kappa,omitempty" json:"kappa,omitempty"`
	Annotations     []string      `yaml:"annotations,omitempty" json:"annotations,omitempty"`
}
