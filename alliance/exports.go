package alliance

// RequiresAlliance is a capability marker: contracts and tooling reference
// it to signal that the target chain must ship the alliance module. It has
// no behavior.
func RequiresAlliance() {}
