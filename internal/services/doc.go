// Package services orchestrates interpreter runs.
//
// Interpreter ties the pieces together: it checks and reads the script
// through a filesystem provider, creates the output file, feeds every line
// to a fresh session and writes each output block through one sequential
// writer.
package services
