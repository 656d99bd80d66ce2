package docs

var topics = []Topic{
	{
		Name:    "quickstart",
		Title:   "Quick Start",
		Summary: "Getting started with inpmod",
		Content: topicQuickstart,
	},
	{
		Name:    "format",
		Title:   "Input File Format",
		Summary: "Keyword, data, and comment lines in Abaqus .inp files",
		Content: topicFormat,
	},
	{
		Name:    "materials",
		Title:   "Material Editing",
		Summary: "Reading, adding, and removing material definitions",
		Content: topicMaterials,
	},
	{
		Name:    "nodes",
		Title:   "Node Editing",
		Summary: "Reading and scaling nodal coordinates",
		Content: topicNodes,
	},
	{
		Name:    "modes",
		Title:   "Parsing Modes",
		Summary: "strict vs permissive block-end detection",
		Content: topicModes,
	},
	{
		Name:    "config",
		Title:   "Configuration Reference",
		Summary: ".inpmod.yaml fields and defaults",
		Content: topicConfig,
	},
}

const topicQuickstart = `Quick Start
===========

1. Show the materials of an input file:

    inpmod show job.inp

2. Add an elastoplastic material and write the result next to the
   original (job_mod.inp by default):

    inpmod add job.inp --material steel --elastic 210000,0.3 --plastic 355,0.0

3. Build a material database from scratch (written to materials.inp,
   or materials-<n>.inp if that name is taken):

    inpmod new --material aluminium --elastic 70000,0.33

4. Strip all material definitions from a file:

    inpmod remove job.inp

5. Scale every nodal coordinate, e.g. mm to m:

    inpmod scale job.inp 0.001

Run 'inpmod init' to create a .inpmod.yaml with the defaults spelled
out, and 'inpmod docs config' for what it controls.
`

const topicFormat = `Input File Format
=================

Abaqus input files are line-oriented and keyword-driven. Three kinds
of line exist:

  keyword line   Begins with a star followed by the keyword name.
                 Parameters, if any, are comma-separated key=value
                 pairs and are case-insensitive:

                     *ELASTIC, TYPE=ISOTROPIC, DEPENDENCIES=1

  data line      Follows a keyword line; comma-separated values:

                     -12.345, 0.01, 5.2E-2, -1.2345E1

  comment line   Begins with two stars and is ignored by Abaqus:

                     ** This is a comment line

A block is the contiguous run of lines belonging to one keyword
family, e.g. all *Material definitions with their behaviors and data
lines. inpmod locates the block of the family it is editing, rewrites
it, and carries every byte outside the block through unchanged.

Use 'inpmod inspect <file>' to list the keyword lines of a file with
their parsed parameters.
`

const topicMaterials = `Material Editing
================

A material definition looks like:

    *Material, name=steel
    *Elastic
    210000.0, 0.3
    *Plastic
    355.0, 0.0

Materials are stored as name -> behavior -> parameter rows, in the
order the file defines them. Parameter values are kept as text, so
rewriting a file never reformats numbers you did not touch.

  inpmod show <file>         Print the material block and a summary.
  inpmod add <file> ...      Read the block, add a material and/or
                             behaviors, write the result.
  inpmod new ...             Build a database without a source file.
  inpmod remove <file>       Delete the whole material block.

Adding a material name that already exists, or a behavior the material
already has, prints a notice and changes nothing.
`

const topicNodes = `Node Editing
============

A node block lists one node per data line, the node id first, then the
coordinates:

    *NODE
    1, 0.0, 0.0, 0.0
    2, 1.0, 0.0, 0.0

'inpmod scale <file> <factor>' multiplies every coordinate (never the
node id) by the factor and writes the modified file. Scaling is the
only operation that parses numbers; everything else treats fields as
opaque text.
`

const topicModes = `Parsing Modes
=============

strict (default)
    The file is trusted to be Abaqus-generated: the edited block is
    contiguous and ends at the first unrelated keyword or comment.
    Scanning stops there; the rest of the file is never read.

permissive
    For third-party .inp files where contiguity cannot be assumed.
    The block range found is the same as in strict mode, but scanning
    continues to the end of the file, and if the same keyword family
    reappears in a later, disjoint section the operation fails instead
    of silently rewriting the wrong span.

Set the mode in .inpmod.yaml or per invocation with --mode.
`

const topicConfig = `Configuration Reference
=======================

inpmod looks for .inpmod.yaml in the working directory and its
parents. Every field is optional; a missing file means the defaults.

    mode: strict          # or permissive (see 'inpmod docs modes')
    output-suffix: _mod   # inserted before the extension of default
                          # output names: job.inp -> job_mod.inp

The --mode and -o flags override the config for one invocation.
`
