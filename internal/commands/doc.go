// Package commands provides the command-line interface for the gohill tool.
//
// The root command takes a key matrix file and a plaintext file, and prints
// the key, the padded plaintext and the Hill ciphertext.
//
// The package handles command-line parsing, configuration validation,
// and environment variable binding through cobra and viper.
package commands
