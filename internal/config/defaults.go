package config

import "github.com/regression-io/claude-config-plugins/internal/consts"

var defaultMappings = []Mapping{
	{
		Template:    "universal",
		Plugin:      "coding-standards",
		Description: "Universal best practices for all projects - code quality, testing, documentation, security, error handling, API design, and git workflow",
	},
	{
		Template:    "languages/python",
		Plugin:      "python-support",
		Description: "Python language best practices - style guides, dependency management, and common patterns",
	},
	{
		Template:    "languages/javascript",
		Plugin:      "javascript-support",
		Description: "JavaScript language best practices - style guides and common patterns",
	},
	{
		Template:    "languages/typescript",
		Plugin:      "typescript-support",
		Description: "TypeScript language best practices - configuration, style guides, and type patterns",
	},
	{
		Template:    "frameworks/fastapi",
		Plugin:      "fastapi-support",
		Description: "FastAPI REST API framework guidance - includes Python best practices and API patterns",
	},
	{
		Template:    "frameworks/react-js",
		Plugin:      "react-js-support",
		Description: "React with JavaScript framework guidance - components, hooks, and best practices",
	},
	{
		Template:    "frameworks/react-ts",
		Plugin:      "react-ts-support",
		Description: "React with TypeScript framework guidance - type-safe components, hooks, and best practices",
	},
	{
		Template:    "frameworks/python-cli",
		Plugin:      "python-cli-support",
		Description: "Python CLI application guidance - argument parsing, user interaction, and CLI patterns",
	},
	{
		Template:    "frameworks/mcp-python",
		Plugin:      "mcp-python-support",
		Description: "MCP Server development in Python - protocol implementation and best practices",
	},
	{
		Template:    "composites/fastapi-react-js",
		Plugin:      "fullstack-fastapi-react",
		Description: "Full-stack monorepo guidance for FastAPI backend + React frontend projects",
	},
	{
		Template:    "composites/fastapi-react-ts",
		Plugin:      "fullstack-fastapi-react-ts",
		Description: "Full-stack monorepo guidance for FastAPI backend + React TypeScript frontend projects",
	},
}

// Default returns the built-in conversion table. It is used whenever no
// config file is given and none exists in the working directory.
func Default() *Config {
	mappings := make([]Mapping, len(defaultMappings))
	copy(mappings, defaultMappings)

	cfg := &Config{
		TemplatesDir: consts.DefaultTemplatesDir,
		PluginsDir:   consts.DefaultPluginsDir,
		Mappings:     mappings,
	}
	_ = cfg.Validate()
	return cfg
}
