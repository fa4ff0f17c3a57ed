// Copyright 2026 The gnls Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package help

type doc struct {
	short string
	long  string
}

type target struct {
	doc
	groups []string // keys of groupVariables
}

type variable struct {
	doc
	input bool
	label bool
}

var builtinFunctions = map[string]doc{
	"assert": {"Assert an expression is true at generation time.", `  assert(<condition> [, <error string>])

  If the condition is false, the build will fail with an error. If the
  optional second argument is provided, that string will be printed with the
  error message.

Examples

  assert(is_win)
  assert(defined(sources), "Sources must be defined");`},
	"declare_args": {"Declare build arguments.", `  Introduces the given arguments into the current scope. If they are not
  specified on the command line or in a toolchain's arguments, the default
  values given in the declare_args block will be used. However, these
  defaults will not override command-line values.

Example

  declare_args() {
    enable_teleporter = true
    enable_doom_melon = false
  }`},
	"defined": {"Returns whether an identifier is defined.", `  Returns true if the given argument is defined. This is most useful in
  templates to assert that the caller set things up properly.

  You can pass an identifier:
    defined(foo)
  which will return true or false depending on whether foo is defined in the
  current scope.

  You can also check a named scope:
    defined(foo.bar)
  which will return true or false depending on whether bar is defined in the
  named scope foo. It will throw an error if foo is not defined or is not a
  scope.`},
	"exec_script": {"Synchronously run a script and return the output.", `  exec_script(filename,
              arguments = [],
              input_conversion = "",
              file_dependencies = [])

  Runs the given script, returning the stdout of the script. The build
  generation will fail if the script does not exist or returns a nonzero exit
  code.

  The current directory when executing the script will be the root build
  directory.`},
	"filter_exclude": {"Remove values that match a set of patterns.", `  filter_exclude(values, exclude_patterns)

  The argument values must be a list of strings.

  The argument exclude_patterns must be a list of file patterns. Any elements
  in values matching at least one of those patterns will be excluded.`},
	"filter_include": {"Remove values that do not match a set of patterns.", `  filter_include(values, include_patterns)

  The argument values must be a list of strings.

  The argument include_patterns must be a list of file patterns. Only elements
  from values matching at least one of the pattern will be included.`},
	"foreach": {"Iterate over a list.", `  foreach(<loop_var>, <list>) {
    <loop contents>
  }

  Executes the loop contents block over each item in the list, assigning the
  loop_var to each item in sequence. The loop_var will be a copy so assigning
  to it will not mutate the list.

Example

  mylist = [ "a", "b", "c" ]
  foreach(i, mylist) {
    print(i)
  }`},
	"forward_variables_from": {"Copies variables from a different scope.", `  forward_variables_from(from_scope, variable_list_or_star,
                         variable_to_not_forward_list = [])

  Copies the given variables from the given scope to the local scope if they
  exist. This is normally used in the context of templates to use the values
  of variables defined in the template invocation to a template-defined
  target.`},
	"get_label_info": {"Get an attribute from a target's label.", `  get_label_info(target_label, what)

  Given the label of a target, returns some attribute of that target. The
  target need not have been previously defined in the same file, since none
  of the attributes depend on the actual target definition, only the label
  itself.`},
	"get_path_info": {"Extract parts of a file or directory name.", `  get_path_info(input, what)

  The first argument is either a string representing a file or directory
  name, or a list of such strings. If the input is a list the return value
  will be a list containing the result of applying the rule to each item in
  the input.`},
	"get_target_outputs": {"[file list] Get the list of outputs from a target.", `  get_target_outputs(target_label)

  Returns a list of output files for the named target. The named target must
  have been previously defined in the current file before this function is
  called (it can't reference targets in other files because there isn't a
  defined execution order, and it obviously can't reference targets that are
  defined after the function call).`},
	"getenv": {"Get an environment variable.", `  value = getenv(env_var_name)

  Returns the value of the given environment variable. If the value is not
  found, it will try to look up the variable with the "opposite" case (based
  on the case of the first letter of the variable), but is otherwise
  case-sensitive.

  If the environment variable is not found, the empty string will be
  returned.`},
	"import": {"Import a file into the current scope.", `  The import command loads the rules and variables resulting from executing
  the given file into the current scope.

  By convention, imported files are named with a .gni extension.

Examples

  import("//build/rules/idl_compilation_rule.gni")

  # Looks in the current directory.
  import("my_vars.gni")`},
	"not_needed": {"Mark variables from scope as not needed.", `  not_needed(variable_list_or_star, variable_to_ignore_list = [])
  not_needed(from_scope, variable_list_or_star,
             variable_to_ignore_list = [])

  Mark the variables in the current or given scope as not needed, which means
  you will not get an error about unused variables for these.`},
	"pool": {"Defines a pool object.", `  Pool objects can be applied to a tool to limit the parallelism of the
  build. This object has a single property "depth" corresponding to the
  number of tasks that may run simultaneously.

Example

  pool("link_pool") {
    depth = 1
  }`},
	"print": {"Prints to the console.", `  Prints all arguments to the console separated by spaces. A newline is
  automatically appended to the end.

  This function is intended for debugging. Note that build files are run in
  parallel so you may get interleaved prints.`},
	"process_file_template": {"Do template expansion over a list of files.", `  process_file_template(source_list, template)

  process_file_template applies a template list to a source file list,
  returning the result of applying each template to each source. This is
  typically used for computing output file names from input files.`},
	"read_file": {"Read a file into a variable.", `  read_file(filename, input_conversion)

  Whitespace will be trimmed from the end of the file. Throws an error if the
  file can not be opened.`},
	"rebase_path": {"Rebase a file or directory to another location.", `  converted = rebase_path(input,
                          new_base = "",
                          current_base = ".")

  Takes a string argument representing a file name, or a list of such
  strings and converts it/them to be relative to a different base directory.`},
	"set_default_toolchain": {"Sets the default toolchain name.", `  set_default_toolchain(toolchain_label)

  The given label should identify a toolchain definition (see "gn help
  toolchain"). This toolchain will be used for all targets unless otherwise
  specified.`},
	"set_defaults": {"Set default values for a target type.", `  set_defaults(<target_type_name>) { <values...> }

  Sets the default values for a given target type. Whenever target_type_name
  is seen in the future, the values specified in set_default's block will be
  copied into the current scope.`},
	"split_list": {"Splits a list into N different sub-lists.", `  result = split_list(input, n)

  Given a list and a number N, splits the list into N sub-lists of
  approximately equal size. The return value is a list of the sub-lists.`},
	"string_join": {"Concatenates a list of strings with a separator.", `  result = string_join(separator, strings)

  Concatenate a list of strings with intervening occurrences of separator.`},
	"string_replace": {"Replaces substring in the given string.", `  result = string_replace(str, old, new[, max])

  Returns a copy of the string str in which the occurrences of old have been
  replaced with new, optionally restricting the number of replacements.`},
	"string_split": {"Split string into a list of strings.", `  result = string_split(str[, sep])

  Split string into all substrings separated by separator and returns a list
  of the substrings between those separators.`},
	"template": {"Define a template rule.", `  A template defines a custom name that acts like a function. It provides a
  way to add to the built-in target types.

  The template() function is used to declare a template. To invoke the
  template, just use the name of the template like any other target type.

  Inside the template, the variable "invoker" refers to the scope of the
  caller and "target_name" to the name given by the caller.`},
	"tool": {"Specify arguments to a toolchain tool.", `  tool(<tool type>) {
    <tool variables...>
  }

  Defines a tool inside a toolchain definition, such as "cc", "cxx", "alink",
  "solink", "link", "stamp" or "copy".`},
	"toolchain": {"Defines a toolchain.", `  A toolchain is a set of commands and build flags used to compile the source
  code. The toolchain() function defines these commands.

  A toolchain is referenced by a label such as "//build/toolchains:gcc".`},
	"write_file": {"Write a file to disk.", `  write_file(filename, data, output_conversion = "")

  If data is a list, the list will be written one-item-per-line with no
  quoting or brackets.

  If the file exists and the contents are identical to that being written,
  the file will not be updated.`},
}

var targetFunctions = map[string]target{
	"action": {doc{"Declare a target that runs a script a single time.", `  This target type allows you to run a script a single time to produce one or
  more output files. If you want to run a script once for each of a set of
  input files, see "gn help action_foreach".

Variables

  args, data, data_deps, depfile, deps, inputs, metadata, outputs*, pool,
  response_file_contents, script*, sources
  * = required`}, []string{"action"}},
	"action_foreach": {doc{"Declare a target that runs a script over a set of files.", `  This target type allows you to run a script once-per-file over a set of
  sources. If you want to run a script once that takes many files as input,
  see "gn help action".`}, []string{"action"}},
	"bundle_data": {doc{"[iOS/macOS] Declare a target without output.", `  This target type allows one to declare data that is required at runtime.
  It is used to inform "create_bundle" targets of the files to copy into
  generated bundle, see "gn help create_bundle" for help.`}, []string{"copy"}},
	"config": {doc{"Defines a configuration object.", `  Configuration objects can be applied to targets and specify sets of
  compiler flags, includes, defines, etc. They provide a way to conveniently
  group sets of this configuration information.

  A config is referenced by its label just like a target.`}, []string{"flags", "configs"}},
	"copy": {doc{"Declare a target that copies files.", `  The sources will be copied to the output location as described by the
  outputs variable.

Variables

  sources*, outputs*, deps, public_deps, data_deps, metadata, visibility
  * = required`}, []string{"copy"}},
	"create_bundle": {doc{"[iOS/macOS] Build an iOS or macOS bundle.", `  This target generates an iOS or macOS bundle (which is a directory with a
  well-know structure). This target does not define any sources, instead they
  are computed from all "bundle_data" target this one depends on transitively
  (the recursion stops at "create_bundle" targets).`}, []string{"bundle"}},
	"executable": {doc{"Declare an executable target.", `  Variables

  Flags: asmflags, cflags, cflags_c, cflags_cc, cflags_objc, cflags_objcc,
         defines, include_dirs, inputs, ldflags, lib_dirs, libs,
         precompiled_header, precompiled_source, rustenv, rustflags,
         swiftflags
  Deps: data_deps, deps, public_deps
  General: check_includes, configs, data, friend, inputs, metadata,
           output_extension, output_name, public, sources, testonly,
           visibility`}, []string{"general", "deps", "flags", "configs", "rust", "swift"}},
	"generated_file": {doc{"Declare a generated_file target.", `  Writes data value(s) to disk on resolution. This target type mirrors some
  functionality of the write_file() function, but also provides the ability
  to collect metadata from its dependencies on resolution rather than writing
  out at parse time.`}, []string{"deps", "configs", "generate"}},
	"group": {doc{"Declare a named group of targets.", `  This target type allows you to create meta-targets that just collect a set
  of dependencies into one named target. Groups can additionally specify
  configs that apply to their dependents.`}, []string{"deps", "configs"}},
	"loadable_module": {doc{"Declare a loadable module target.", `  This target type allows you to create an object file that is (and can
  only be) loaded and unloaded at runtime.

  A loadable module will be specified on the linker line for targets listing
  the loadable module in its "deps". If you don't want this (if you don't
  need to dynamically load the library at runtime), then you should use a
  "shared_library" target type instead.`}, []string{"general", "deps", "flags", "configs", "rust", "rust_extra", "swift"}},
	"rust_library": {doc{"Declare a Rust library target.", `  A Rust library is an archive containing additional rust-c provided
  metadata. These are the files produced by the rustc compiler with the
  .rlib extension, and are the intermediate step for most Rust-based
  binaries.`}, []string{"general", "deps", "flags", "configs", "rust"}},
	"rust_proc_macro": {doc{"Declare a Rust procedural macro target.", `  A Rust procedural macro allows creating syntax extensions as execution of a
  function. They are compiled as dynamic libraries and used by the compiler at
  runtime.`}, []string{"general", "deps", "flags", "configs", "rust"}},
	"shared_library": {doc{"Declare a shared library target.", `  A shared library will be specified on the linker line for targets listing
  the shared library in its "deps". If you don't want this (say you
  dynamically load the library at runtime), then you should depend on the
  shared library via "data_deps" or, on Darwin platforms, use a
  "loadable_module" target type instead.`}, []string{"general", "deps", "flags", "configs", "rust", "rust_extra", "swift"}},
	"source_set": {doc{"Declare a source set target.", `  Only C-language source sets are supported at the moment.

  A source set is a collection of sources that get compiled, but are not
  linked to produce any kind of library. Instead, the resulting object files
  are implicitly added to the linker line of all targets that depend on the
  source set.`}, []string{"general", "deps", "flags", "configs"}},
	"static_library": {doc{"Declare a static library target.", `  Make a ".a" / ".lib" file.

  If you only need the static library for intermediate results in the build,
  you should consider a source_set instead since it will skip the (potentially
  slow) step of creating the intermediate library file.`}, []string{"general", "deps", "flags", "configs", "static", "rust", "swift"}},
}

var builtinVariables = map[string]doc{
	"current_cpu":       {"[string] The processor architecture of the current toolchain.", ""},
	"current_os":        {"[string] The operating system of the current toolchain.", ""},
	"current_toolchain": {"[string] Label of the current toolchain.", ""},
	"default_toolchain": {"[string] Label of the default toolchain.", ""},
	"gn_version":        {"[number] The version of gn.", ""},
	"host_cpu":          {"[string] The processor architecture that GN is running on.", ""},
	"host_os":           {"[string] The operating system that GN is running on.", ""},
	"invoker": {"[string] The invoking scope inside a template.", `  Inside a template invocation, this variable refers to the scope of the
  invoker of the template. Outside of template invocations, this variable is
  undefined.`},
	"python_path":    {"[string] Absolute path of Python.", ""},
	"root_build_dir": {"[string] Directory where build commands are run.", ""},
	"root_gen_dir":   {"[string] Directory for the toolchain's generated files.", ""},
	"root_out_dir":   {"[string] Root directory for toolchain output files.", ""},
	"target_cpu":     {"[string] The desired cpu architecture for the build.", ""},
	"target_gen_dir": {"[string] Directory for a target's generated files.", ""},
	"target_name": {"[string] The name of the current target.", `  Inside a target or template invocation, this variable refers to the name
  given to the target or template invocation.`},
	"target_os":      {"[string] The desired operating system for the build.", ""},
	"target_out_dir": {"[string] Directory for target output files.", ""},
}

var groupVariables = map[string][]string{
	"general": {
		"check_includes", "data", "friend", "inputs", "metadata",
		"output_dir", "output_extension", "output_name",
		"output_prefix_override", "public", "sources", "testonly",
		"visibility",
	},
	"deps": {
		"allow_circular_includes_from", "assert_no_deps", "data_deps",
		"deps", "public_deps", "write_runtime_deps",
	},
	"flags": {
		"arflags", "asmflags", "cflags_c", "cflags_cc", "cflags_objc",
		"cflags_objcc", "cflags", "configs", "defines", "externs",
		"framework_dirs", "frameworks", "include_dirs", "inputs", "ldflags",
		"lib_dirs", "libs", "precompiled_header_type", "precompiled_header",
		"precompiled_source", "rustenv", "rustflags", "swiftflags",
		"weak_frameworks",
	},
	"configs": {"all_dependent_configs", "public_configs"},
	"copy": {
		"data_deps", "deps", "metadata", "outputs", "public_deps",
		"sources", "visibility",
	},
	"action": {
		"args", "data_deps", "data", "depfile", "deps", "inputs",
		"metadata", "outputs", "pool", "response_file_contents", "script",
		"sources",
	},
	"generate": {"contents", "data_keys", "output_conversion", "rebase", "walk_keys"},
	"static":   {"complete_static_lib"},
	"bundle": {
		"bundle_contents_dir", "bundle_deps_filter", "bundle_executable_dir",
		"bundle_resources_dir", "bundle_root_dir", "code_signing_args",
		"code_signing_outputs", "code_signing_script", "code_signing_sources",
		"data_deps", "deps", "metadata", "partial_info_plist", "product_type",
		"public_deps", "visibility", "xcasset_compiler_flags",
		"xcode_extra_attributes", "xcode_test_application_name",
	},
	"rust":       {"aliased_deps", "crate_name", "crate_root"},
	"rust_extra": {"crate_type"},
	"swift":      {"bridge_header", "module_name"},
}

var targetVariables = map[string]variable{
	"aliased_deps":                 {doc: doc{"[scope] Set of crate-dependency pairs.", ""}},
	"all_dependent_configs":        {doc{"[label list] Configs to be forced on dependents.", ""}, true, true},
	"allow_circular_includes_from": {doc{"[label list] Permit includes from deps.", ""}, true, true},
	"arflags":                      {doc: doc{"[string list] Arguments passed to static_library archiver.", ""}},
	"args":                         {doc: doc{"[string list] Arguments passed to an action.", ""}},
	"asmflags":                     {doc: doc{"[string list] Flags passed to the assembler.", ""}},
	"assert_no_deps":               {doc{"[label pattern list] Ensure no deps on these targets.", ""}, true, true},
	"bridge_header":                {doc{"[string] Path to C/Objective-C compatibility header.", ""}, true, false},
	"bundle_contents_dir":          {doc: doc{"Expansion of {{bundle_contents_dir}} in create_bundle.", ""}},
	"bundle_deps_filter":           {doc{"[label list] A list of labels that are filtered out.", ""}, true, true},
	"bundle_executable_dir":        {doc: doc{"Expansion of {{bundle_executable_dir}} in create_bundle.", ""}},
	"bundle_resources_dir":         {doc: doc{"Expansion of {{bundle_resources_dir}} in create_bundle.", ""}},
	"bundle_root_dir":              {doc: doc{"Expansion of {{bundle_root_dir}} in create_bundle.", ""}},
	"cflags": {doc: doc{"[string list] Flags passed to all C compiler variants.", `  A list of strings. Flags passed to all invocations of the C, C++,
  Objective C, and Objective C++ compilers.

  To target one of these variants individually, use "cflags_c", "cflags_cc",
  "cflags_objc", and "cflags_objcc", respectively.`}},
	"cflags_c":                {doc: doc{"[string list] Flags passed to the C compiler.", ""}},
	"cflags_cc":               {doc: doc{"[string list] Flags passed to the C++ compiler.", ""}},
	"cflags_objc":             {doc: doc{"[string list] Flags passed to the Objective C compiler.", ""}},
	"cflags_objcc":            {doc: doc{"[string list] Flags passed to the Objective C++ compiler.", ""}},
	"check_includes":          {doc: doc{"[boolean] Controls whether a target's files are checked.", ""}},
	"code_signing_args":       {doc: doc{"[string list] Arguments passed to code signing script.", ""}},
	"code_signing_outputs":    {doc: doc{"[file list] Output files for code signing step.", ""}},
	"code_signing_script":     {doc{"[file name] Script for code signing.", ""}, true, false},
	"code_signing_sources":    {doc{"[file list] Sources for code signing step.", ""}, true, false},
	"complete_static_lib":     {doc: doc{"[boolean] Links all deps into a static library.", ""}},
	"configs":                 {doc{"[label list] Configs applying to this target or config.", ""}, true, true},
	"contents":                {doc: doc{"Contents to write to file.", ""}},
	"crate_name":              {doc: doc{"[string] The name for the compiled crate.", ""}},
	"crate_root":              {doc: doc{"[string] The root source file for a binary or library.", ""}},
	"crate_type":              {doc: doc{"[string] The type of linkage to use on a shared_library.", ""}},
	"data":                    {doc{"[file list] Runtime data file dependencies.", ""}, true, false},
	"data_deps":               {doc{"[label list] Non-linked dependencies.", ""}, true, true},
	"data_keys":               {doc: doc{"Keys from which to collect metadata.", ""}},
	"defines":                 {doc: doc{"[string list] C preprocessor defines.", "  A list of strings\n\n  These strings will be passed to the C/C++ compiler as #defines. The strings\n  may or may not include an \"=\" to assign a value."}},
	"depfile":                 {doc: doc{"[string] File name for input dependencies for actions.", ""}},
	"deps":                    {doc{"[label list] Private linked dependencies.", "  A list of target labels.\n\n  Specifies private dependencies of a target. Private dependencies are\n  propagated up the dependency tree and linked to dependent targets, but do\n  not grant the ability to include headers from the dependency."}, true, true},
	"externs":                 {doc: doc{"[scope] Set of Rust crate-dependency pairs.", ""}},
	"framework_dirs":          {doc{"[directory list] Additional framework search directories.", ""}, true, false},
	"frameworks":              {doc: doc{"[name list] Name of frameworks that must be linked.", ""}},
	"friend":                  {doc{"[label pattern list] Allow targets to include private headers.", ""}, true, true},
	"include_dirs":            {doc{"[directory list] Additional include directories.", ""}, true, false},
	"inputs":                  {doc{"[file list] Additional compile-time dependencies.", ""}, true, false},
	"ldflags":                 {doc: doc{"[string list] Flags passed to the linker.", ""}},
	"lib_dirs":                {doc{"[directory list] Additional library directories.", ""}, true, false},
	"libs":                    {doc: doc{"[string list] Additional libraries to link.", ""}},
	"metadata":                {doc: doc{"[scope] Metadata of this target.", ""}},
	"module_name":             {doc: doc{"[string] The name for the compiled module.", ""}},
	"output_conversion":       {doc: doc{"Data format for generated_file targets.", ""}},
	"output_dir":              {doc: doc{"[directory] Directory to put output file in.", ""}},
	"output_extension":        {doc: doc{"[string] Value to use for the output's file extension.", ""}},
	"output_name":             {doc: doc{"[string] Name for the output file other than the default.", ""}},
	"output_prefix_override":  {doc: doc{"[boolean] Don't use prefix for output name.", ""}},
	"outputs":                 {doc: doc{"[file list] Output files for actions and copy targets.", ""}},
	"partial_info_plist":      {doc: doc{"[filename] Path plist from asset catalog compiler.", ""}},
	"pool":                    {doc{"[string] Label of the pool used by binary targets and actions.", ""}, true, true},
	"precompiled_header":      {doc{"[string] Header file to precompile.", ""}, true, false},
	"precompiled_header_type": {doc: doc{`[string] "gcc" or "msvc".`, ""}},
	"precompiled_source":      {doc{"[file name] Source file to precompile.", ""}, true, false},
	"product_type":            {doc: doc{"[string] Product type for the bundle.", ""}},
	"public":                  {doc{"[file list] Declare public header files for a target.", ""}, true, false},
	"public_configs":          {doc{"[label list] Configs applied to dependents.", ""}, true, true},
	"public_deps":             {doc{"[label list] Declare public dependencies.", ""}, true, true},
	"rebase":                  {doc: doc{"Rebase collected metadata as files.", ""}},
	"response_file_contents":  {doc: doc{"[string list] Contents of .rsp file for actions.", ""}},
	"rustenv":                 {doc: doc{"[string list] Additional environment variables for Rust.", ""}},
	"rustflags":               {doc: doc{"[string list] Flags passed to the Rust compiler.", ""}},
	"script":                  {doc{"[file name] Script file for actions.", ""}, true, false},
	"sources": {doc{"[file list] Source files for a target.", `  A list of files. Non-absolute paths will be resolved relative to the
  current build file.`}, true, false},
	"swiftflags":                  {doc: doc{"[string list] Flags passed to the swift compiler.", ""}},
	"testonly":                    {doc: doc{"[boolean] Declares a target must only be used for testing.", ""}},
	"visibility":                  {doc{"[label list] A list of labels that can depend on a target.", ""}, true, true},
	"walk_keys":                   {doc: doc{"Key(s) for managing the metadata collection walk.", ""}},
	"weak_frameworks":             {doc: doc{"[name list] Name of frameworks that must be weak linked.", ""}},
	"write_runtime_deps":          {doc: doc{"Writes the target's runtime_deps to the given path.", ""}},
	"xcasset_compiler_flags":      {doc: doc{"[string list] Flags passed to xcassets compiler.", ""}},
	"xcode_extra_attributes":      {doc: doc{"[scope] Extra attributes for Xcode projects.", ""}},
	"xcode_test_application_name": {doc: doc{"Name for Xcode test target.", ""}},
}
