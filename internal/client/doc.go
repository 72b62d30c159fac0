// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the command-line client of the user service.
//
// Each invocation runs exactly one subcommand (login, create, get, list,
// find, update, delete, bulk) against the server through
// [adapter.UserServiceAdapter] and prints the JSON answer to stdout.
package client
