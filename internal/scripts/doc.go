// Package scripts holds the registered copies of the script sources in
// assets/scripts, produced by gen-scripts. Edit the sources, not these.
package scripts
