// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package knowledge

import "github.com/neurobloom/coach-engine/pkg/types"

// defaultEntry is returned when nothing scores. It points the reader at
// categories to explore instead of making a specific claim.
var defaultEntry = Entry{
	Topic: types.TopicNone,
	Definition: []string{
		"We could not match your question to a specific condition or topic.",
		"The guidance below is general wellbeing advice drawn from national health sources.",
		"Try asking about a specific topic such as ADHD, autism, anxiety, or sleep.",
	},
	Management: Management{
		General: []string{
			"Keep a simple routine for sleep, meals, and movement.",
			"Break large tasks into small, concrete steps.",
			"Talk to someone you trust about what you are finding hard.",
			"Explore the breathing and mindfulness exercises on this site.",
		},
		Immediate: []string{
			"Pause and take five slow breaths before deciding anything.",
		},
	},
	WhenToSeek: []string{
		"Speak to your GP if difficulties persist for more than a few weeks or interfere with daily life.",
	},
}

// entries is the curated topic table in declaration order. Lookup ties
// resolve by this order.
var entries = []Entry{
	{
		Topic:    types.TopicAutism,
		Keywords: []string{"autism", "autistic", "asd", "asperger", "neurodivergent", "stimming", "meltdown", "sensory"},
		Definition: []string{
			"Autism is a lifelong neurodevelopmental difference affecting how people communicate, process sensory information, and experience the world.",
			"It is a spectrum: support needs and strengths vary widely between autistic people.",
			"Autism is not an illness to be cured; support focuses on environment, understanding, and skills.",
		},
		Strengths: []string{
			"Deep focus and expertise in areas of interest.",
			"Strong pattern recognition and attention to detail.",
			"Honesty, loyalty, and a distinctive perspective.",
		},
		Management: Management{
			General: []string{
				"Use clear, literal language and allow extra processing time.",
				"Keep routines predictable and flag changes in advance.",
				"Reduce sensory load: lighting, noise, and crowding all count.",
			},
			Home: []string{
				"Build a visual daily schedule and review it together.",
				"Create a low-stimulation retreat space for recovery after demanding days.",
				"Follow the person's interests; they are a bridge, not an obstacle.",
			},
			School: []string{
				"Provide written instructions alongside verbal ones.",
				"Offer a quiet exit route and a named safe adult.",
				"Prepare the pupil for transitions and timetable changes early.",
				"Use special interests to anchor new learning.",
			},
			Workplace: []string{
				"Put requests and feedback in writing.",
				"Offer noise-cancelling headphones or a quieter desk as adjustments.",
				"Make expectations explicit rather than relying on unwritten norms.",
			},
			Immediate: []string{
				"During overload, reduce demands and sensory input first; talk later.",
			},
		},
		Assessment: []string{
			"Diagnosis is made by a specialist team against established criteria, usually after a developmental history and observation.",
			"Waiting lists are long in many areas; support does not need to wait for a diagnosis.",
		},
		WhenToSeek: []string{
			"Ask your GP for a referral if social communication differences significantly affect daily life.",
			"Seek urgent advice if distress escalates to self-injury or shutdowns lasting days.",
		},
		Myths: []string{
			"Myth: autism is caused by vaccines. Large studies across millions of children show no link.",
			"Myth: autistic people lack empathy. Many feel empathy intensely and express it differently.",
		},
		Clinician: []string{
			"Consider co-occurring ADHD, anxiety, and sleep disorder; prevalence of each is substantially elevated.",
		},
	},
	{
		Topic:    types.TopicADHD,
		Keywords: []string{"adhd", "attention deficit", "hyperactiv", "impulsiv", "inattentive", "executive function", "focus", "concentrat"},
		Definition: []string{
			"ADHD is a neurodevelopmental condition affecting attention regulation, impulse control, and activity level.",
			"It presents differently across people and ages; inattention without hyperactivity is common and often missed.",
			"Difficulties come from regulating attention, not from its absence.",
		},
		Strengths: []string{
			"Energy, spontaneity, and creative idea generation.",
			"Hyperfocus on engaging tasks.",
			"Resilience and quick thinking under pressure.",
		},
		Management: Management{
			General: []string{
				"Externalize memory: lists, alarms, and visible timers beat willpower.",
				"Work in short, timed bursts with movement breaks.",
				"Pair boring tasks with something stimulating (music, body-doubling).",
			},
			Home: []string{
				"Keep one launchpad spot for keys, bag, and paperwork.",
				"Use visual checklists for morning and evening routines.",
				"Praise effort and completion immediately, not at the end of the week.",
			},
			School: []string{
				"Seat the pupil away from high-traffic distractions and near the teacher.",
				"Break tasks into single-step instructions with check-ins.",
				"Allow movement: errands, fidget tools, or standing work.",
				"Mark effort separately from presentation.",
			},
			Workplace: []string{
				"Ask for deadlines in writing and agree priorities explicitly.",
				"Block focus time in the calendar and silence notifications.",
				"Use the first hour for the hardest task, before decision fatigue.",
			},
			Immediate: []string{
				"Before reacting, name the impulse out loud; a few seconds is often enough.",
			},
		},
		Assessment: []string{
			"Assessment involves a clinical interview, rating scales from multiple settings, and a developmental history.",
			"Symptoms must be present across settings and have started in childhood.",
		},
		WhenToSeek: []string{
			"Talk to your GP if attention or impulse difficulties consistently disrupt school, work, or relationships.",
		},
		Myths: []string{
			"Myth: ADHD is just bad parenting or laziness. It is a well-evidenced neurodevelopmental condition with strong heritability.",
			"Myth: only boys have ADHD. Girls and women are under-diagnosed, often presenting as inattentive rather than hyperactive.",
		},
		Clinician: []string{
			"Screen for co-occurring specific learning difficulties and sleep problems before attributing all impairment to ADHD.",
		},
	},
	{
		Topic:    types.TopicDyslexia,
		Keywords: []string{"dyslexia", "dyslexic", "reading difficult", "spelling", "phonic", "literacy"},
		Definition: []string{
			"Dyslexia is a specific learning difficulty that primarily affects accurate and fluent word reading and spelling.",
			"It occurs across the range of intellectual abilities and is unrelated to intelligence.",
		},
		Strengths: []string{
			"Strong big-picture reasoning and verbal discussion skills.",
			"Visual and spatial thinking.",
		},
		Management: Management{
			General: []string{
				"Use audiobooks and text-to-speech freely; reading the words is not the goal, understanding is.",
				"Prefer sans-serif fonts, wider spacing, and off-white backgrounds.",
			},
			Home: []string{
				"Read together daily without pressure; alternate pages.",
				"Practise spelling little and often with multisensory methods.",
			},
			School: []string{
				"Provide notes in advance and avoid asking the pupil to read aloud unprepared.",
				"Allow extra time and assistive technology in assessments.",
				"Use structured, cumulative phonics intervention.",
			},
			Workplace: []string{
				"Request spell-check, dictation tools, and extra proofreading time as adjustments.",
			},
		},
		Assessment: []string{
			"A diagnostic assessment by a specialist teacher or psychologist profiles reading, spelling, and processing skills.",
		},
		WhenToSeek: []string{
			"Ask school for an assessment if reading progress stalls well behind verbal ability.",
		},
	},
	{
		Topic:    types.TopicAnxiety,
		Keywords: []string{"anxiety", "anxious", "panic", "worry", "worrie", "phobia", "social anxiety", "overwhelm"},
		Definition: []string{
			"Anxiety is the body's threat response firing when no immediate danger exists.",
			"It becomes a problem when worry is persistent, out of proportion, and interferes with daily life.",
		},
		Strengths: []string{
			"Conscientiousness and strong risk awareness.",
			"Empathy for others under pressure.",
		},
		Management: Management{
			General: []string{
				"Practise slow breathing daily, not just during spikes; skills need rehearsal.",
				"Reduce caffeine and protect sleep; both amplify anxious arousal.",
				"Approach avoided situations in small, repeated steps.",
			},
			Home: []string{
				"Set a daily 15-minute 'worry window' and park worries until then.",
				"Model calm problem-solving out loud for children.",
			},
			School: []string{
				"Agree a discreet signal for leaving the room without explanation.",
				"Avoid surprise spotlighting; give warning before asking the pupil to speak.",
			},
			Workplace: []string{
				"Break presentations and reviews into smaller, rehearsable pieces.",
				"Name the physical symptoms to yourself; labelling reduces their grip.",
			},
			Immediate: []string{
				"Breathe out longer than you breathe in for ten cycles.",
				"Ground yourself: name five things you can see, four you can hear, three you can touch.",
			},
		},
		Assessment: []string{
			"GPs screen with short questionnaires (e.g. GAD-7) and can refer to talking therapies.",
			"Cognitive behavioural therapy has the strongest evidence base for anxiety disorders.",
		},
		WhenToSeek: []string{
			"See your GP if anxiety persists most days for several weeks or causes panic attacks.",
		},
		Myths: []string{
			"Myth: avoiding triggers cures anxiety. Avoidance relieves it briefly and strengthens it long-term.",
		},
	},
	{
		Topic:    types.TopicDepression,
		Keywords: []string{"depress", "low mood", "hopeless", "no motivation", "anhedonia", "sad all the time"},
		Definition: []string{
			"Depression is persistent low mood or loss of interest lasting weeks, with changes in sleep, appetite, energy, and concentration.",
			"It is a common, treatable condition, not a character weakness.",
		},
		Strengths: []string{},
		Management: Management{
			General: []string{
				"Schedule small activities daily even without motivation; action precedes mood.",
				"Keep daylight exposure and gentle movement in the routine.",
				"Stay connected: isolation feeds depression.",
			},
			Home: []string{
				"Lower the bar: a short walk counts, a shower counts.",
				"Agree one anchor activity per day with someone supportive.",
			},
			School: []string{
				"Watch for withdrawal and slipping work rather than visible sadness.",
				"Keep the pupil included in low-pressure group roles.",
			},
			Workplace: []string{
				"Discuss a temporary workload adjustment with your manager or occupational health.",
			},
			Immediate: []string{
				"If you are having thoughts of harming yourself, treat this as urgent and seek help today.",
			},
		},
		Assessment: []string{
			"GPs assess with a clinical interview and questionnaires (e.g. PHQ-9), and discuss talking therapy and medication options.",
		},
		WhenToSeek: []string{
			"See your GP if low mood lasts more than two weeks or daily functioning suffers.",
			"Seek urgent help for any thoughts of self-harm or suicide.",
		},
		Clinician: []string{
			"Ask directly about suicidal ideation; asking does not increase risk.",
		},
	},
	{
		Topic:    types.TopicBipolar,
		Keywords: []string{"bipolar", "mania", "manic", "hypomania", "mood swings"},
		Definition: []string{
			"Bipolar disorder involves episodes of depression and episodes of elevated or irritable mood (mania or hypomania).",
			"Episodes last days to weeks and differ from everyday mood ups and downs.",
		},
		Management: Management{
			General: []string{
				"Track mood, sleep, and triggers daily; early-warning signs are the main lever.",
				"Protect regular sleep; disruption commonly precedes episodes.",
				"Stay engaged with your care team and medication plan.",
			},
			Home: []string{
				"Agree in advance with family what to do when early-warning signs appear.",
			},
			Workplace: []string{
				"Consider predictable shifts rather than rotating patterns as an adjustment.",
			},
			Immediate: []string{
				"If sleep drops sharply and thoughts race, contact your care team now rather than waiting.",
			},
		},
		Assessment: []string{
			"Diagnosis is made by a psychiatrist from episode history; mood diaries materially help.",
		},
		WhenToSeek: []string{
			"Seek review urgently for escalating mania, or any safety concerns.",
		},
		Clinician: []string{
			"Antidepressant monotherapy can precipitate mania; review bipolar history before prescribing.",
		},
	},
	{
		Topic:    types.TopicStress,
		Keywords: []string{"stress", "burnout", "burn out", "pressure", "overload", "exhausted"},
		Definition: []string{
			"Stress is the body's response to demand; short bursts are normal, but chronic stress without recovery harms health.",
			"Burnout is chronic workplace stress with exhaustion, cynicism, and reduced efficacy.",
		},
		Management: Management{
			General: []string{
				"Schedule recovery as deliberately as work: breaks, movement, and offline time.",
				"Write the worry down and pick the single next action.",
				"Practise a daily wind-down: breathing, stretching, or a short walk.",
			},
			Home: []string{
				"Protect one screen-free hour before bed.",
			},
			School: []string{
				"Teach exam-period planning with built-in rest, not just revision timetables.",
			},
			Workplace: []string{
				"Negotiate priorities explicitly when everything is marked urgent.",
				"Take annual leave in real blocks, not single scattered days.",
			},
			Immediate: []string{
				"Step away for two minutes of slow breathing before returning to the stressor.",
			},
		},
		Assessment: []string{
			"There is no single stress test; GPs assess impact on sleep, mood, and physical health.",
		},
		WhenToSeek: []string{
			"See your GP if stress causes persistent physical symptoms, insomnia, or low mood.",
		},
	},
	{
		Topic:    types.TopicSleep,
		Keywords: []string{"sleep", "insomnia", "bedtime", "waking", "nightmare", "tired", "melatonin"},
		Definition: []string{
			"Good sleep depends on a stable body clock, sufficient sleep pressure, and a calm wind-down.",
			"Insomnia means regular difficulty falling or staying asleep with daytime impact, despite opportunity to sleep.",
		},
		Management: Management{
			General: []string{
				"Keep wake-up time fixed seven days a week; it anchors the body clock.",
				"Get outdoor light within an hour of waking.",
				"Use the bed only for sleep; if awake over 20 minutes, get up and do something dull.",
				"Cut caffeine after midday.",
			},
			Home: []string{
				"Run the same 30-minute wind-down order every night; predictability is the point.",
				"Keep bedrooms cool, dark, and screen-free.",
			},
			School: []string{
				"Schedule demanding lessons later in the morning for adolescents where possible.",
			},
			Workplace: []string{
				"Avoid late-evening email; the anticipation alone fragments sleep.",
			},
			Immediate: []string{
				"Tonight: no screens in the last hour, and write tomorrow's list before bed, not in bed.",
			},
		},
		Assessment: []string{
			"A two-week sleep diary is the standard first assessment step.",
			"CBT for insomnia (CBT-I) is the recommended first-line treatment, ahead of medication.",
		},
		WhenToSeek: []string{
			"See your GP if insomnia persists beyond a month, or for loud snoring with daytime sleepiness.",
		},
		Myths: []string{
			"Myth: everyone needs 8 hours. Need varies; daytime functioning is the real test.",
		},
	},
	{
		Topic:    types.TopicBreathing,
		Keywords: []string{"breathing", "breathe", "breath", "hyperventilat", "box breathing"},
		Definition: []string{
			"Slow breathing exercises activate the parasympathetic system, lowering heart rate and the stress response.",
			"They are skills: a few minutes of daily practice makes them available under pressure.",
		},
		Management: Management{
			General: []string{
				"Practise box breathing: in for 4, hold 4, out 4, hold 4, for two minutes.",
				"Try 4-7-8 breathing at bedtime: in for 4, hold 7, out for 8.",
				"Breathe low into the belly rather than high into the chest.",
			},
			School: []string{
				"Run a one-minute class breathing break before tests.",
			},
			Immediate: []string{
				"Lengthen the exhale: out-breath twice as long as the in-breath, ten cycles.",
			},
		},
		Assessment: []string{},
		WhenToSeek: []string{
			"Seek medical advice for breathlessness at rest or with chest pain; that is not an exercise issue.",
		},
	},
	{
		Topic:    types.TopicMindfulness,
		Keywords: []string{"mindful", "meditation", "meditate", "grounding", "present moment"},
		Definition: []string{
			"Mindfulness is paying attention to the present moment, on purpose and without judgement.",
			"Regular practice is associated with reduced stress and rumination.",
		},
		Management: Management{
			General: []string{
				"Start with three minutes daily; consistency beats duration.",
				"Use an anchor: breath, sounds, or feet on the floor.",
				"When the mind wanders, noticing and returning is the practice, not a failure.",
			},
			Home: []string{
				"Attach practice to an existing habit, like after brushing your teeth.",
			},
			School: []string{
				"Short guided practices work better than silence for beginners.",
			},
		},
		Assessment: []string{},
		WhenToSeek: []string{
			"Mindfulness can surface difficult feelings; pause and seek support if practice reliably increases distress.",
		},
	},
}
