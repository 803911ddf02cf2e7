// Package agent invokes the opencode agent executable with the
// wrapper-managed environment. The Runner supports two execution modes:
// interactive, where the child inherits the parent's terminal streams, and
// captured, where both output streams are buffered and returned in full. It
// also hosts the doctor checks and the agent version gate.
package agent
