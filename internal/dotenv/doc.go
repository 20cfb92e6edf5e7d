// Package dotenv creates, loads and deletes the project's .env file.
//
// The .env file is produced from a template (.env.example) and a set of
// KEY=VALUE overrides given on the command line:
//
//   - Merge: the pure line transform from template text plus overrides to
//     output text. Template order, comments and blank lines are kept, each
//     key appears once (first occurrence wins), overrides replace template
//     values and unknown override keys are appended in the order given.
//   - ParseOverrides: turns "KEY=VALUE KEY2=VALUE2" into an OverrideSet.
//   - Create: validates the template, merges and writes .env atomically.
//   - Delete: removes .env.
//   - Config: the loaded .env values, with an explicit Loaded flag, passed
//     to whoever needs them instead of mutating the process environment.
//
// Lines are trimmed before parsing. A line is a variable when it contains
// "=" and the text before the first "=" is not empty; anything else is kept
// verbatim.
package dotenv
