package skill

// Skill represents a skill manifest (skill.toml).
// The manifest is optional; a skill is just a directory of files, but a
// manifest lets the author pin the install name and describe the skill.
type Skill struct {
	// Skill contains metadata about the skill
	Skill Meta `toml:"skill"`
}

// Meta contains metadata for the skill.
type Meta struct {
	// Name is the unique identifier for this skill (required)
	Name string `toml:"name"`

	// Description is a human-readable description of the skill (required)
	Description string `toml:"description"`

	// Version is the semantic version of the skill (optional)
	Version string `toml:"version,omitempty"`
}
