// Package catalog loads the prompt, feature and image lists a session draws
// from.
//
// Lists live in a directory (or any fs.FS) as:
//
//	prompts.txt   one prompt per line
//	features.txt  one feature tag per line
//	images.json   a JSON array of image references, or {"images": [...]}
//	images/       image files served under /images/
//
// Blank lines and lines starting with '#' are ignored in the text lists. A
// default set is embedded in the binary.
package catalog
