/*
Package display renders optree search trees for human inspection.

Rendering is strictly read-only: it walks the tree through the public
preorder traversal and never touches ownership state. Output is an indented
one-key-per-line listing, colored for interactive terminals. For a
structural Graphviz view use optree.TreeDot instead.
*/
package display
