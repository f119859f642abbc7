package bot

const helpText = "*JSON Tool Bot*\n\n" +
	"*1. Merge Files (No Duplicates)*\n" +
	"   /merge - Combine multiple files into one unique list.\n\n" +
	"*2. Concatenate Files (Keep Duplicates)*\n" +
	"   /concat - Append multiple files into one list as-is.\n\n" +
	"*3. Subtract Links (Main - Others)*\n" +
	"   /operation - Remove processed links from a main file.\n\n" +
	"*4. Split JSON*\n" +
	"   /split [n] - Split a file into n equal parts.\n" +
	"   (e.g., /split 5)\n\n" +
	"*5. Find & Replace*\n" +
	"   /replace - Literal text replacement across all items.\n\n" +
	"/done finishes a merge or subtraction, /cancel aborts anything."

const (
	replyMergeStarted = "🔗 *Merge Mode (No Duplicates)* started.\n" +
		"Upload your JSON files one by one.\n" +
		"Duplicates will be auto-removed.\n" +
		"Type /done when finished."

	replyConcatStarted = "🔗 *Concat Mode (Keep Duplicates)* started.\n" +
		"Upload your JSON files one by one.\n" +
		"Everything is kept in upload order.\n" +
		"Type /done when finished."

	replySubtractStarted = "1️⃣ *Step 1:* Upload the *MAIN* JSON file."

	replyReplaceStarted = "🔎 *Replace Mode* started.\nSend the text to find."

	replyReplaceFindSet = "✏️ Now send the replacement text."
	replyReplaceReady   = "📄 Got it. Upload the JSON file to process."

	replySplitMissingN = "⚠️ Please specify N. Example: `/split 5`"
	replySplitBadN     = "⚠️ Invalid number. Example: `/split 5`"
	replySplitSmallN   = "⚠️ N must be greater than 0."

	replyNoActiveOp  = "⚠️ No active operation."
	replySelectCmd   = "⚠️ Select a command: /merge, /operation, or /split n"
	replyBadFile     = "❌ Error: File must be a valid JSON List `[...]`."
	replyNoData      = "⚠️ No data collected."
	replyNoMainFile  = "⚠️ No Main file uploaded."
	replyEmptySplit  = "⚠️ The file is empty — nothing to split."
	replyEmptyFind   = "⚠️ Find text cannot be empty."
	replyWantFile    = "⚠️ I need a JSON file right now, not text."
	replyWantText    = "⚠️ I need text right now, not a file."
	replyCancelled   = "🚫 Operation cancelled."
	replyUnknownCmd  = "⚠️ Unknown command. Type /help for the list."
	replyNothingDone = "⚠️ Nothing to finalize here. Upload the file I'm waiting for, or /cancel."
)
