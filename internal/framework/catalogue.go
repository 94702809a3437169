package framework

import "github.com/heartmarshall/fastslide-backend/internal/domain"

var contentAngles = []ContentAngle{
	{
		Name:        domain.ContentAngleCUB,
		Label:       "CUB Framework",
		Description: "Contrarian - Useful - Bridge",
		Components: []Component{
			{
				Key:         "contrarian",
				Label:       "Contrarian",
				Description: "Challenge conventional wisdom with a bold, different perspective",
				Example:     "Software engineers say you need a PRD and a wireframe before you start. Wrong. Three bad prototypes are worth more than one perfect plan.",
			},
			{
				Key:         "useful",
				Label:       "Useful",
				Description: "Provide practical, actionable value that people can immediately apply",
				Example:     "Here's my 4-step Explore Method: pick one idea, create 3 different prompts, compare the outputs, and keep what works.",
			},
			{
				Key:         "bridge",
				Label:       "Bridge",
				Description: "Connect your specific insight to broader implications and opportunities",
				Example:     "AI makes iteration nearly free. That changes not just coding, but the way we build businesses.",
			},
		},
	},
	{
		Name:        domain.ContentAnglePASE,
		Label:       "PASE Framework",
		Description: "Problem - Agitate - Solve - Expand",
		Components: []Component{
			{
				Key:         "problem",
				Label:       "Problem",
				Description: "Identify and clearly articulate the core issue your audience faces",
				Example:     "Most teams spend months in planning mode.",
			},
			{
				Key:         "agitate",
				Label:       "Agitate",
				Description: "Highlight the consequences and pain points of not addressing the problem",
				Example:     "By the time your wireframe is polished, the market has moved, and you're already behind.",
			},
			{
				Key:         "solve",
				Label:       "Solve",
				Description: "Present your solution as the clear path forward",
				Example:     "Explore Method: create 3 versions in a day, spot what doesn't work, and refine fast.",
			},
			{
				Key:         "expand",
				Label:       "Expand",
				Description: "Show how your solution opens up new possibilities and opportunities",
				Example:     "This mindset lets you pivot, test, and innovate faster than traditional teams ever could.",
			},
		},
	},
	{
		Name:        domain.ContentAngleHEAR,
		Label:       "HEAR Framework",
		Description: "Hook - Empathy - Authority - Roadmap",
		Components: []Component{
			{
				Key:         "hook",
				Label:       "Hook",
				Description: "Grab attention immediately with a compelling opening",
				Example:     "Perfect planning kills creativity.",
			},
			{
				Key:         "empathy",
				Label:       "Empathy",
				Description: "Show understanding of your audience's struggles and experiences",
				Example:     "I used to waste weeks on specs that nobody even looked at.",
			},
			{
				Key:         "authority",
				Label:       "Authority",
				Description: "Establish your credibility and unique perspective",
				Example:     "That's why I developed the Explore Method: 3 prototypes instead of 1 plan.",
			},
			{
				Key:         "roadmap",
				Label:       "Roadmap",
				Description: "Provide clear, actionable next steps",
				Example:     "Step 1: Pick an idea. Step 2: Write 3 prompts. Step 3: Compare results. Step 4: Keep the spark, toss the junk.",
			},
		},
	},
	{
		Name:        domain.ContentAngleYouTube,
		Label:       "YouTube Framework",
		Description: "Hook - Promise - Payoff - Call to Action",
		Components: []Component{
			{
				Key:         "hook",
				Label:       "Hook",
				Description: "Open with a moment that makes it impossible to look away",
				Example:     "I rebuilt our onboarding in one afternoon and signups doubled.",
			},
			{
				Key:         "promise",
				Label:       "Promise",
				Description: "Tell the audience exactly what they will walk away with",
				Example:     "By the end you'll have the same three-screen flow we shipped.",
			},
			{
				Key:         "payoff",
				Label:       "Payoff",
				Description: "Deliver the promised value in concrete, visual steps",
				Example:     "Screen one asks a single question. Screen two shows the result. Screen three asks for the email.",
			},
			{
				Key:         "cta",
				Label:       "Call to Action",
				Description: "Ask for one specific next action while attention is highest",
				Example:     "Pick your longest onboarding form and cut it to one question today.",
			},
		},
	},
	{
		Name:        domain.ContentAngleWhatWhyHow,
		Label:       "What - Why - How",
		Description: "What it is - Why it matters - How to do it",
		Components: []Component{
			{
				Key:         "what",
				Label:       "What",
				Description: "Define the idea in plain words with one concrete example",
				Example:     "A prototype is a rough version you can click through in a day.",
			},
			{
				Key:         "why",
				Label:       "Why",
				Description: "Explain the stakes for this audience and what changes if they act",
				Example:     "Teams that prototype first find their biggest mistake in week one, not month three.",
			},
			{
				Key:         "how",
				Label:       "How",
				Description: "Give a short, ordered method the audience can follow",
				Example:     "Sketch three options, build the cheapest, and show it to five users.",
			},
		},
	},
}

var hookAngles = []HookAngle{
	{
		Name:        domain.HookAngleFortuneTeller,
		Label:       "Fortune Teller",
		Description: "Pits today vs tomorrow to spark curiosity about what's coming.",
		Example:     "This update will change how we edit videos next month.",
	},
	{
		Name:        domain.HookAngleExperimenter,
		Label:       "Experimenter",
		Description: `"I tried X so you don't have to." Shows a demo or test and what happened.`,
		Example:     "I used this workflow for 7 days. Here's what actually worked.",
	},
	{
		Name:        domain.HookAngleTeacher,
		Label:       "Teacher",
		Description: "Extracts a lesson or framework and explains it step-by-step.",
		Example:     "3 rules I used to cut my render times in half.",
	},
	{
		Name:        domain.HookAngleMagician,
		Label:       "Magician",
		Description: "Scroll-stopper using a striking visual/sound that forces attention.",
		Example:     `Snap zoom on a wild before/after: "Watch this frame transform in 3 seconds."`,
	},
	{
		Name:        domain.HookAngleInvestigator,
		Label:       "Investigator",
		Description: "Reveals a hidden insight, secret, or under-the-radar finding.",
		Example:     "The feature nobody mentions that doubles your click-through.",
	},
	{
		Name:        domain.HookAngleContrarian,
		Label:       "Contrarian",
		Description: "Takes a clear stance against common wisdom.",
		Example:     "Stop using templates. This is why they're killing your brand.",
	},
}
