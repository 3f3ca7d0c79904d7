// Package systemlog holds the append-only audit record written for every
// state-changing workflow operation.
package systemlog
