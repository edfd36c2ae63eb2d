package nhohnhehr

// Version is the release of the engine, overridden at build time with
// -ldflags "-X github.com/aretw0/nhohnhehr.Version=...".
var Version = "0.3.0"
