package mcp

import "github.com/mark3labs/mcp-go/mcp"

// listSurahsTool defines the list_surahs MCP tool.
var listSurahsTool = mcp.NewTool("list_surahs",
	mcp.WithDescription("List the 114 surahs of the Quran with their Arabic and English names, optionally filtered by name."),
	mcp.WithString("query",
		mcp.Description("Case-insensitive substring of the Arabic or English surah name"),
	),
)

// getSurahTool defines the get_surah MCP tool.
var getSurahTool = mcp.NewTool("get_surah",
	mcp.WithDescription("Get the full Arabic text of a surah, ayah by ayah, optionally paired with its translation."),
	mcp.WithNumber("number",
		mcp.Required(),
		mcp.Description("Surah number, 1-114"),
	),
	mcp.WithBoolean("translation",
		mcp.Description("Include the configured translation edition under each ayah"),
	),
)

// explainAyahTool defines the explain_ayah MCP tool.
var explainAyahTool = mcp.NewTool("explain_ayah",
	mcp.WithDescription("Get a concise Arabic explanation of a single ayah. Explanations are generated once and then reused."),
	mcp.WithNumber("surah",
		mcp.Required(),
		mcp.Description("Surah number, 1-114"),
	),
	mcp.WithNumber("ayah",
		mcp.Required(),
		mcp.Description("Ayah number within the surah"),
	),
)
