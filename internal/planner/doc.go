// Package planner maps scanned files into a versioned delivery tree.
//
// Every file lands at
//
//	<output root>/<project>/<asset>/<version>/<category>/<file name>
//
// where the category comes from folder hints in the relative path or, failing
// that, from the file extension. Planning is a dry run: nothing is written.
//
// Identity problems (blank project or asset, malformed version) and
// destination collisions are reported as ERROR findings. A plan carrying any
// ERROR must not be executed.
package planner
