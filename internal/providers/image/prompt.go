package image

import "bannerarchitect/internal/domain"

// BannerAspectRatio is the fixed vertical format every banner is rendered in.
const BannerAspectRatio = "9:16"

// Templates are sent byte for byte, indentation included.
const bannerCommonRequirements = `
    Create a professional 9:16 vertical promotional banner for 'XOX247'.
    Content must include 4 distinct sections or icons for:
    1. 🎮 Live Games
    2. 🎰 Slots
    3. 🏏 Sports
    4. 🐟 Arcade/Fish
    
    Required Text Overlays:
    - '✨ Bonus on First Deposit' (Main visual hook)
    - '👉 Register Now | xox247.com' (Call to action at the bottom)
    - '🛑 18+ Only | Play Responsibly' (Small regulatory text)
    
    Safety Rules:
    - NO images of cash, coins, or currency.
    - NO betting slips or 'win money' visuals.
    - Policy-safe and Facebook Ads compliant.
    - Focus on game entertainment value.
  `

const (
	cyberDirection = `
        Style: Futuristic Neon Cyber.
        Visuals: Dark gradient background, vibrant neon pink and electric blue accents, 3D gaming icons, glowing bold typography, digital particle effects, high-tech interface aesthetic.`

	minimalDirection = `
        Style: Minimal Flat Design.
        Visuals: Light gray or off-white background, clean geometric flat icons, elegant sans-serif typography (like Inter or Helvetica), spacious layout, sophisticated simplicity.`

	luxuryDirection = `
        Style: Luxury Gold / Premium.
        Visuals: Deep black/charcoal background with brushed gold metallic accents, elegant serif typography, subtle sparkles or bokeh effects, premium materials aesthetic, high-end exclusive feel.`

	cartoonDirection = `
        Style: Cartoon / Playful.
        Visuals: Bright multicolored vibrant background (sky blue, yellow, orange), friendly rounded cartoonish icons, bold playful bubble fonts, high energy, fun and engaging mascot-style illustrations.`
)

// BannerPrompt returns the full text-to-image instruction for a banner style.
// Unknown styles get the shared requirements without a visual direction.
func BannerPrompt(style domain.BannerStyle) string {
	switch style {
	case domain.BannerStyleCyber:
		return bannerCommonRequirements + cyberDirection
	case domain.BannerStyleMinimal:
		return bannerCommonRequirements + minimalDirection
	case domain.BannerStyleLuxury:
		return bannerCommonRequirements + luxuryDirection
	case domain.BannerStyleCartoon:
		return bannerCommonRequirements + cartoonDirection
	default:
		return bannerCommonRequirements
	}
}

// AspectRatioSize maps an aspect ratio string to pixel dimensions.
func AspectRatioSize(aspect string) (int, int) {
	switch aspect {
	case "16:9":
		return 1664, 928
	case "4:3":
		return 1472, 1104
	case "3:4":
		return 1104, 1472
	case "9:16":
		return 928, 1664
	default:
		return 1328, 1328
	}
}
