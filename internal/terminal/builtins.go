// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package terminal implements the simulated command line.
package terminal

// DefaultGreeting is shown when the terminal first opens.
var DefaultGreeting = []string{
	"Welcome to ArpitStack CLI v1.1",
	`Type "help" to see available commands.`,
}

// DefaultRegistry returns the canonical command table.
func DefaultRegistry() *Registry {
	r := NewRegistry()
	registerBuiltins(r)
	return r
}

func registerBuiltins(r *Registry) {
	r.Register("help", MultiLine(
		"Available commands:",
		"  about          - Learn about ArpitStack",
		"  projects       - List core open-source projects",
		"  secretstack    - Scan current context for secrets",
		"  cloudstack     - Validate cloud configuration",
		"  contact        - Get contact details",
		"  clear          - Clear the terminal",
		"  neofetch       - Display system information",
	))

	r.Register("about", SingleLine(
		"ArpitStack: Innovating Stack of Solutions. Senior Technical Lead specializing in Security & Cloud Architecture.",
	))

	r.Register("projects", MultiLine(
		"Core Portfolio:",
		"  - SecretStack (VSCode Security)",
		"  - CloudStack (Multi-Cloud CLI)",
		"  - VaultStack (Encrypted Storage)",
		"  - ScaleStack (EC2 Elastic Scaler)",
	))

	r.Register("neofetch", MultiLine(
		"ArpitStack@Portfolio",
		"-------------------",
		"OS: ArpitStackOS v1.1 (Custom Kernel)",
		"Host: Digital Nomad MBP",
		"Kernel: 6.12.0-arpitstack",
		"Uptime: 7+ years (Experienced Professional)",
		"Packages: Node v20, Go 1.22, Python 3.12, Rust 1.75",
		"Shell: zsh (StackShell)",
		"Resolution: Premium Aesthetic 4K",
		"Focus: Frontend, Backend, GenAI, System Design, Security, Cloud",
	))

	r.Register("secretstack", SingleLine(
		"Scanning... [||||||||||] 100% - No secrets exposed. Safe to commit!",
	))

	r.Register("cloudstack", SingleLine(
		"Connecting to AWS/GCP/Azure... Credentials validated. Multi-cloud sync active.",
	))

	r.Register("contact", SingleLine(
		"Email: arpitstack@gmail.com | GitHub: ArpitStack | LinkedIn: ArpitStack",
	))
}
