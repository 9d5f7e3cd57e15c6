package bounded

// Version is the current version of the bounded module. The CLI reports it
// when the binary carries no module version.
const Version = "1.0.0"
