// Package workspace manages the directories a site task writes to: the output
// tree that is reset before each build, and the trees copied into it or
// removed from disk.
package workspace
