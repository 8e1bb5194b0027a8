/*
Package markup renders tagged text through a terminal.

Tags name terminal attributes, exactly as they would be passed to
Terminal.Attr, or semantic styles from the [styles] config section:

	<bold_red>Error:</bold_red> <muted>{{.Path}}</muted>

# Core Functions

  - Render: processes a Go template, then expands tags
  - ExpandTags: only expands tags
  - StripTags: removes all tags for plain text output

Nested tags work as expected: when an inner tag closes, the attributes
of the enclosing tags are emitted again after the reset sequence.

	<bold>Hello <red>world</red>!</bold>

Tags that resolve to a plain capability emit its sequence once, which
makes self-closing tags useful:

	Loading...<clear_eol/>

Unknown tags are dropped and their content kept.

# Special Tags

The <no-format> tag only renders when the terminal does no styling:

	<green>ok</green><no-format> (ok)</no-format>

Input that is not well formed is returned unchanged.
*/
package markup
