package main

import (
	"strings"

	"github.com/samber/lo"
)

type Experience struct {
	Company      string   `json:"company"`
	Role         string   `json:"role"`
	Period       string   `json:"period"`
	Location     string   `json:"location"`
	Current      bool     `json:"current"`
	Description  string   `json:"description"`
	Achievements []string `json:"achievements"`
}

type Highlight struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

type SkillGroup struct {
	Title string   `json:"title"`
	Items []string `json:"items"`
}

type Certification struct {
	Name     string `json:"name"`
	FullName string `json:"full_name"`
	Issuer   string `json:"issuer"`
}

type FAQ struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

// ProgramSection is a sub-page of a program, e.g. its architecture or cost
// model.
type ProgramSection struct {
	Slug   string   `json:"slug"`
	Title  string   `json:"title"`
	Intro  string   `json:"intro"`
	Points []string `json:"points"`
}

type Program struct {
	Slug        string           `json:"slug"`
	Title       string           `json:"title"`
	Description string           `json:"description"`
	Company     string           `json:"company"`
	Type        string           `json:"type"`
	Tags        []string         `json:"tags"`
	Featured    bool             `json:"featured"`
	Problem     []string         `json:"problem"`
	Outcomes    []Highlight      `json:"outcomes"`
	Guardrails  []string         `json:"guardrails,omitempty"`
	Sections    []ProgramSection `json:"sections,omitempty"`
}

type Resume struct {
	File        string `json:"file"`
	Label       string `json:"label"`
	Description string `json:"description"`
}

type ContactChannel struct {
	Label string
	Value string
	Href  string
}

func (c ContactChannel) External() bool {
	return strings.HasPrefix(c.Href, "http")
}

type Crumb struct {
	Label string
	Href  string
}

var (
	Headline = `Senior Technical Program Manager building security data platforms,
	cost governance programs and the mechanisms that keep them running.`

	AboutMe = []string{
		`I lead large, cross-organization programs where security, data platforms and cost meet.
		Most of my work starts where ownership is unclear and the budget is real.`,
		`Over fifteen years I have run cybersecurity portfolios in financial services and
		security data platforms at cloud scale, with a focus on measurable outcomes and
		decision-ready communication.`,
		`Outside of work you will find me cooking, chasing a good cup of coffee, or
		listening to hip-hop and reggae.`,
	}

	Values = []Highlight{
		{"Integrity", "Building trust through transparent communication and ethical decision-making in every interaction."},
		{"Excellence", "Pursuing the highest standards in program delivery while continuously learning and improving."},
		{"Collaboration", "Fostering inclusive environments where diverse perspectives drive better outcomes."},
		{"Impact", "Focusing on meaningful results that create lasting value for organizations and teams."},
	}

	Experiences = []Experience{
		{
			Company:     "Amazon Web Services (AWS)",
			Role:        "Senior Technical Program Manager",
			Period:      "2022 - Present",
			Location:    "Seattle, WA",
			Current:     true,
			Description: "Leading security data platforms and enterprise-wide security initiatives with significant budget oversight and cross-functional program delivery.",
			Achievements: []string{
				"Lead security data platforms with $80M annual budget oversight, ensuring efficient resource allocation and ROI tracking",
				"Drive end-to-end program delivery for enterprise security initiatives spanning multiple AWS organizations",
				"Develop and execute multi-year roadmaps aligning security investments with business objectives",
				"Implement program governance frameworks improving delivery predictability by 40%",
			},
		},
		{
			Company:     "Charles Schwab",
			Role:        "Managing Director, Cybersecurity Portfolio",
			Period:      "2018 - 2022",
			Location:    "San Francisco, CA",
			Description: "Directed a cybersecurity portfolio spanning threat intelligence, incident response and security operations.",
			Achievements: []string{
				"Managed portfolio of 20+ cybersecurity programs with combined budget exceeding $50M",
				"Established security operations center (SOC) modernization program improving detection capabilities",
				"Drove regulatory compliance programs ensuring adherence to SEC, FINRA, and state requirements",
				"Built and mentored team of 25+ security professionals across multiple disciplines",
			},
		},
		{
			Company:     "Experian",
			Role:        "Senior Director, Cybersecurity PMO",
			Period:      "2015 - 2018",
			Location:    "Costa Mesa, CA",
			Description: "Directed the cybersecurity PMO through a period of security transformation and breach remediation.",
			Achievements: []string{
				"Led data breach remediation program ensuring comprehensive security improvements",
				"Established enterprise cybersecurity PMO with standardized governance and delivery frameworks",
				"Drove security transformation reducing incident response time by 60%",
			},
		},
		{
			Company:     "Bank of America",
			Role:        "Director, Technology Program Management",
			Period:      "2012 - 2015",
			Location:    "Charlotte, NC",
			Description: "Directed technology program management for enterprise infrastructure and security initiatives.",
			Achievements: []string{
				"Managed $30M+ portfolio of technology infrastructure programs",
				"Led enterprise identity and access management modernization initiative",
				"Coordinated cross-functional delivery across 10+ technology teams",
			},
		},
		{
			Company:     "Deloitte Consulting",
			Role:        "Senior Consultant, Technology Strategy",
			Period:      "2009 - 2012",
			Location:    "Los Angeles, CA",
			Description: "Delivered technology strategy and program management consulting to Fortune 500 clients.",
			Achievements: []string{
				"Led technology transformation engagements for financial services clients",
				"Managed client relationships and delivery teams of 15+ consultants",
			},
		},
	}

	Strengths = []Highlight{
		{"FinOps & Cost Governance", "Showback and chargeback models, cost attribution across shared platforms, forecasting, and treating cost as a design constraint."},
		{"Large-Scale Data Platforms", "Data lakes, telemetry pipelines, retention policy design, lifecycle automation, and query platform optimization."},
		{"Security & Risk Programs", "Insider risk telemetry, detection and response workflows, governance controls, and security program execution."},
		{"Cross-Org Program Leadership", "Alignment across product, engineering, finance, and ops when ownership, funding, or priorities are unclear."},
		{"Executive Communication", "Decision-ready narratives for senior leaders: crisp options, tradeoffs, and clear asks tied to measurable outcomes."},
		{"Operational Excellence", "Metrics, reviews, alerting, and mechanisms that drive predictable delivery and measurable quality improvements."},
	}

	SkillGroups = []SkillGroup{
		{"Platform & Data Systems", []string{
			"Data lakes and telemetry platforms",
			"Retention, lifecycle, and storage optimization",
			"Query platforms and cost-aware access patterns",
			"Metadata, catalogs, and governance controls",
		}},
		{"FinOps & Cost Management", []string{
			"Cost modeling, forecasting, and variance analysis",
			"Showback / chargeback mechanisms",
			"Business case framing and ROI narratives",
			"Budget governance and operating cadences",
		}},
		{"Program & Stakeholder Leadership", []string{
			"Cross-org planning and execution",
			"Dependency, risk, and escalation management",
			"Prioritization and tradeoff facilitation",
			"Executive reviews and narrative reporting",
		}},
		{"Security, Compliance & Governance", []string{
			"Risk programs and control mechanisms",
			"Data access governance and policy design",
			"Audit readiness and control automation",
			"Incident response coordination and learnings",
		}},
	}

	Certifications = []Certification{
		{"PMP", "Project Management Professional", "PMI"},
		{"CISSP", "Certified Information Systems Security Professional", "ISC²"},
		{"AWS SAA", "AWS Solutions Architect Associate", "Amazon Web Services"},
		{"CISM", "Certified Information Security Manager", "ISACA"},
	}

	FAQs = []FAQ{
		{"What kinds of roles are you exploring?", "Staff TPM and Director-level opportunities in security, data platforms and FinOps."},
		{"Are you open to remote work?", "Yes. I am based in Irvine, CA and open to remote or hybrid roles."},
		{"How do you measure program success?", "Every program starts with a small set of outcome metrics agreed with stakeholders and reviewed on a fixed cadence."},
	}

	Programs = []Program{
		{
			Slug:        "retention",
			Title:       "Data Retention Program",
			Description: "A reusable program pattern to control storage growth with automated retention, safe deletion guardrails, and a cost forecasting model.",
			Company:     "Amazon",
			Type:        "Cost Optimization",
			Tags:        []string{"FinOps", "Governance", "Event-driven"},
			Featured:    true,
			Problem: []string{
				"Telemetry volume grew faster than the budget for storing it.",
				"Cleanup was manual and ticket driven, with no audit trail.",
			},
			Outcomes: []Highlight{
				{"Automated enforcement", "Retention policies execute continuously with no manual cleanup or ticket-driven operations."},
				{"Lower storage footprint + spend", "Deletes expired data to reduce storage footprint and bend the cost curve as volume grows."},
				{"Compliance + auditability", "Creates an auditable trail of what was deleted, when, and why."},
				{"Scales with growth", "Event-driven workers scale horizontally to handle dataset growth without re-architecting."},
			},
			Guardrails: []string{
				"Throttling/backpressure to protect downstream systems (catalog, object store, APIs)",
				"Rate limits + concurrency caps per dataset/table/partition family",
				"Idempotent operations for safe retries and failure recovery",
				"DLQ + replay workflows for controlled reprocessing",
				"Audit logging + metrics to prove compliance and detect anomalies",
			},
			Sections: []ProgramSection{
				{"architecture", "Data Retention Service", "An event-driven service that discovers expired partitions and deletes them safely.", []string{
					"Policy store defines retention per dataset",
					"Scheduler emits deletion candidates as events",
					"Workers delete with throttling and write an audit record",
				}},
				{"model", "Retention Cost Model", "How storage spend changes as retention windows shrink.", []string{
					"Baseline: current footprint multiplied by blended storage rate",
					"Projection: daily ingest multiplied by the retention window",
					"Savings: the difference, net of deletion compute",
				}},
			},
		},
		{
			Slug:        "cost-allocation-showback",
			Title:       "Cost Allocation / Showback",
			Description: "A FinOps platform capability to allocate infrastructure costs to owners and express unit economics so teams can define what good looks like for their platform.",
			Company:     "Amazon",
			Type:        "FinOps Platform",
			Tags:        []string{"Unit Costs", "Showback", "Forecasting"},
			Featured:    true,
			Problem: []string{
				"Shared platform costs had no owner.",
				"Teams could not see the cost of their own usage.",
			},
			Outcomes: []Highlight{
				{"Clear ownership", "Every dollar of shared spend maps to an accountable team."},
				{"Unit economics", "Cost per TB ingested and cost per query minute are tracked over time."},
			},
			Sections: []ProgramSection{
				{"architecture", "Showback Architecture", "Usage and billing data are joined into a per-owner cost ledger.", []string{
					"Billing exports land in the data lake daily",
					"Usage telemetry is tagged with owning team",
					"Allocation rules produce a monthly showback report",
				}},
				{"model", "Allocation Model", "Direct costs are assigned; shared costs are split by usage share.", []string{
					"Direct: tagged resources map to one owner",
					"Shared: split by ingest volume or query minutes",
					"Unallocated: reported separately and driven to zero",
				}},
			},
		},
		{
			Slug:        "ioc-integration",
			Title:       "IOC Integration Program",
			Description: "A security enablement program to ingest, normalize, and distribute Indicators of Compromise into detection and investigation workflows.",
			Company:     "Amazon",
			Type:        "Security Platform",
			Tags:        []string{"Threat Intel", "Pipelines", "Governance"},
			Featured:    true,
			Problem: []string{
				"Indicator feeds arrived in many formats with no common owner.",
				"Detection teams could not tell which indicators were fresh.",
			},
			Outcomes: []Highlight{
				{"One pipeline", "Feeds are normalized once and distributed to every consumer."},
				{"Freshness", "Indicators carry source and age so stale data can be expired."},
			},
			Sections: []ProgramSection{
				{"architecture", "IOC Pipeline Architecture", "Feeds are ingested, normalized and fanned out to detection tooling.", []string{
					"Connectors pull external and internal feeds",
					"Normalization maps every feed to one schema",
					"Distribution pushes indicators to detection and investigation tools",
				}},
			},
		},
		{
			Slug:        "cybersecurity-maturity",
			Title:       "Cybersecurity Maturity Program",
			Description: "A durability-first cybersecurity maturity program that measures whether controls stick, with roll-up scoring from objective to domain to enterprise.",
			Company:     "Experian",
			Type:        "Security Governance Framework",
			Tags:        []string{"Threat Intel", "Governance", "Security First"},
			Problem: []string{
				"Control assessments measured presence, not durability.",
			},
			Outcomes: []Highlight{
				{"Comparable scores", "A 1 to 5 scale rolls up from objective to domain to enterprise."},
				{"Durable controls", "Coverage, metrics, automation and process are scored separately."},
			},
		},
	}

	Resumes = []Resume{
		{"rick-imai-resume.pdf", "Resume", "Full resume covering technical program management, security and FinOps."},
		{"Rick_Imai_Resume_Infrastructure_Governance_FinOps.pdf", "Infrastructure, Governance & FinOps",
			"Focused resume for infrastructure governance, cost allocation and FinOps roles."},
	}

	ContactChannels = []ContactChannel{
		{"Email", "rick.imai@gmail.com", "mailto:rick.imai@gmail.com"},
		{"LinkedIn", "linkedin.com/in/rick-imai", "https://linkedin.com/in/rick-imai"},
		{"GitHub", "github.com/rickimai", "https://github.com/rickimai"},
		{"Location", "Irvine, CA", ""},
	}
)

func findProgram(slug string) (Program, bool) {
	return lo.Find(Programs, func(p Program) bool { return p.Slug == slug })
}

func (p Program) Section(slug string) (ProgramSection, bool) {
	return lo.Find(p.Sections, func(s ProgramSection) bool { return s.Slug == slug })
}

func (p Program) Href() string {
	return "/programs/" + p.Slug
}

func featuredPrograms() []Program {
	return lo.Filter(Programs, func(p Program, _ int) bool { return p.Featured })
}

// programTags lists every tag used by any program, in first-seen order.
func programTags() []string {
	return lo.Uniq(lo.FlatMap(Programs, func(p Program, _ int) []string { return p.Tags }))
}

func findResume(file string) (Resume, bool) {
	return lo.Find(Resumes, func(r Resume) bool { return r.File == file })
}

// programCrumbs builds the breadcrumb trail for a program page. The last
// crumb has no link.
func programCrumbs(p Program, section *ProgramSection) []Crumb {
	crumbs := []Crumb{{Label: "Programs", Href: "/programs"}, {Label: p.Title, Href: p.Href()}}
	if section != nil {
		crumbs = append(crumbs, Crumb{Label: section.Title})
	}
	crumbs[len(crumbs)-1].Href = ""
	return crumbs
}
