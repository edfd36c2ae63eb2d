/*
Package observability turns engine lifecycle hooks into monitoring signals.

Metrics exposes Prometheus counters for executed steps, grown rooms, units
of I/O and halts. Combine merges several hook sets so metrics, debug
logging and custom callbacks can observe the same run.
*/
package observability
