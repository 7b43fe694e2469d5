package builder

// Scripted assistant copy. Fixed per step, never regenerated; the optional
// enrichment layer may rewrite these for display but the transcript always
// records the scripted text.

const welcomePrompt = "Welcome to 31Labs! 🚀 Let's build your business agent together.\n\n" +
	"First, tell me about your business:\n" +
	"• What type of business is it? (e.g., eCommerce store, service business, portfolio)\n" +
	"• What's your brand name?"

const readyPrompt = "Perfect! 🎉 Your agent is ready. You can now publish it or continue editing using prompts below."

const heroPromptFmt = "Great! %s sounds perfect. ✨\n\n" +
	"Now let's create your hero section:\n" +
	"• What's your main headline? (e.g., \"Premium Fashion for Modern Living\")\n" +
	"• What's your subheader? (e.g., \"20%% off - Limited Time\")"

const catalogPrompt = "Perfect! Your hero section is set. 🎯\n\n" +
	"Now add your products:\nShare product names and prices\n\n" +
	"Example: \"T-Shirt $29, Hoodie $65, Cap $15\""

const catalogRetryPrompt = "I couldn't find any products in that. 🛍️\n\n" +
	"Share product names and prices\n\n" +
	"Example: \"T-Shirt $29, Hoodie $65, Cap $15\""

const backgroundPromptFmt = "Excellent! %d products added. 🛍️\n\n" +
	"Next, let's set a background image for your agent:\n" +
	"Paste an image URL or type \"skip\" for default background\n\n" +
	"Example: https://images.unsplash.com/photo-..."

const tonePrompt = "Great! Background set. 🎨\n\n" +
	"Last step - choose your agent's tone:\n• Friendly\n• Professional\n• Casual\n• Luxury"

const completePromptFmt = "🎉 Congratulations! Your %s agent is ready!\n\n" +
	"Your agent URL: 31labs.com/%s\n\n" +
	"You can continue editing anytime using prompts like:\n" +
	"• \"hero: New Text\"\n• \"add product pill Accessories\"\n• \"make it more professional\""

const helpPrompt = "I can help you:\n" +
	"• \"brand: YourBrand\" - Change brand name\n" +
	"• \"hero: Your New Hero\" - Add/change hero text\n" +
	"• \"subheader: Your subtitle\" - Add/change subheader\n" +
	"• \"add product pill Hoodies\" - Add product category\n" +
	"• \"make it friendly\" - Change tone"

const heroClarify = "I can update the hero text. Try: 'hero Your New Text' or 'add hero: Premium Collection'"

const subheaderClarify = "I can update the subheader. Try: 'subheader Your New Text' or 'add subheader: Discover our collection'"

const brandClarify = "I can update the brand name. Try: 'brand YourBrand' or 'brand: LUXE'"

const pillClarify = "I can add product pills. Try: 'add product pill Hoodies' or 'add category Accessories'"

const toneClarify = "I can update the tone. Try: 'make it more friendly' or 'professional tone'"
