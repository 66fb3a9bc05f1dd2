// Package catalog holds the static WMS process taxonomy: category reference
// data for display and the deterministic question bank used when AI
// generation is unavailable.
package catalog

import (
	"github.com/wmsConsultant/backend/internal/model"
)

type Category struct {
	Key            string   `json:"key"`
	Title          string   `json:"title"`
	Description    string   `json:"description"`
	FocusAreas     []string `json:"focus_areas"`
	Questions      []string `json:"-"`
	Considerations []string `json:"-"`
}

// Categories returns every catalog category in stable order.
func Categories() []Category {
	return categories
}

// Lookup returns the category for key, false if the key is unknown.
func Lookup(key string) (Category, bool) {
	for _, c := range categories {
		if c.Key == key {
			return c, true
		}
	}
	return Category{}, false
}

// SampleQuestions returns the first n questions of the category's static
// bank. It truncates when the bank is shorter than n, never wraps around,
// and returns nil for an unknown key.
func SampleQuestions(key string, n int) []string {
	c, ok := Lookup(key)
	if !ok || n <= 0 {
		return nil
	}
	if n > len(c.Questions) {
		n = len(c.Questions)
	}
	out := make([]string, n)
	copy(out, c.Questions[:n])
	return out
}

// Processes renders the catalog as WMSProcess rows for seeding and the
// reference endpoint.
func Processes() []model.WMSProcess {
	out := make([]model.WMSProcess, 0, len(categories))
	for i, c := range categories {
		out = append(out, model.WMSProcess{
			ID:                      uint(i + 1),
			Category:                c.Key,
			Name:                    c.Title,
			Description:             c.Description,
			TypicalQuestions:        model.StringList(c.Questions),
			TechnicalConsiderations: model.StringList(c.Considerations),
		})
	}
	return out
}

var categories = []Category{
	{
		Key:         "receiving",
		Title:       "Receiving Operations",
		Description: "Inbound delivery processing, dock management, quality control, ASN handling",
		FocusAreas: []string{
			"Advance Shipping Notice (ASN) processing",
			"Dock door management and scheduling",
			"Quality control and inspection processes",
			"Discrepancy handling and resolution",
			"Cross-docking operations",
			"Vendor compliance requirements",
		},
		Questions: []string{
			"What is your current receiving process workflow from truck arrival to inventory confirmation?",
			"How do you handle advance shipping notices (ASN) and what data is required?",
			"What are your dock door management and scheduling requirements?",
			"How do you manage quality control checks during receiving?",
			"What procedures do you have for handling receiving discrepancies?",
			"What is your current daily receiving volume (number of receipts/SKUs)?",
			"What are your peak receiving hours and seasonal variations?",
			"How do you manage cross-docking operations if applicable?",
		},
		Considerations: []string{
			"ASN processing capabilities",
			"Mobile device integration for receiving",
			"Quality control workflows",
			"Exception handling procedures",
			"Vendor compliance requirements",
		},
	},
	{
		Key:         "putaway",
		Title:       "Putaway Management",
		Description: "Storage location assignment, putaway strategies, slotting optimization",
		FocusAreas: []string{
			"Putaway strategy rules (FIFO, LIFO, location-based)",
			"Slotting optimization algorithms",
			"Storage type management (bulk, rack, floor)",
			"Directed vs. random putaway",
			"Hazardous material handling",
			"Zone-based putaway strategies",
		},
		Questions: []string{
			"What putaway strategies do you currently use (random, fixed, zone-based)?",
			"How do you determine optimal storage locations for received items?",
			"Do you use directed or operator-directed putaway processes?",
			"What product characteristics drive your storage decisions (ABC analysis, velocity, size)?",
			"How do you handle storage of hazardous or special handling materials?",
			"What storage capacity constraints shape your putaway rules today?",
		},
		Considerations: []string{
			"Slotting optimization rules",
			"Location capacity tracking",
			"Task interleaving with replenishment",
			"Special handling restrictions",
		},
	},
	{
		Key:         "inventory",
		Title:       "Inventory Control",
		Description: "Stock tracking, cycle counting, inventory accuracy, ABC analysis",
		FocusAreas: []string{
			"Inventory tracking methods (lot, serial, batch)",
			"Cycle counting procedures and frequency",
			"Real-time inventory visibility",
			"ABC analysis and classification",
			"Expiration date tracking (FEFO)",
			"Safety stock management",
		},
		Questions: []string{
			"What is your current inventory accuracy rate and how is it measured?",
			"How frequently do you perform cycle counts and physical inventories?",
			"How do you handle inventory adjustments and variance resolution?",
			"What lot tracking or serialization requirements do you have?",
			"How do you manage expiration dates and FIFO/LIFO requirements?",
			"How do you manage inventory reservations and allocations today?",
			"What safety stock policies do you apply by item class?",
		},
		Considerations: []string{
			"Lot and serial capture points",
			"Cycle count scheduling",
			"Adjustment approval workflows",
			"Allocation and reservation logic",
		},
	},
	{
		Key:         "picking",
		Title:       "Order Picking",
		Description: "Pick strategies, path optimization, task management, accuracy validation",
		FocusAreas: []string{
			"Picking methods (discrete, batch, wave, zone)",
			"Pick path optimization algorithms",
			"Task prioritization and sequencing",
			"Short pick handling procedures",
			"Voice, RF, and pick-to-light integration",
			"Pick location replenishment",
		},
		Questions: []string{
			"What picking methods do you currently use (discrete, batch, wave, zone)?",
			"How do you optimize pick paths and minimize travel time?",
			"What are your requirements for pick task prioritization?",
			"How do you handle short picks and back-order situations?",
			"What validation methods do you use to ensure pick accuracy?",
			"What is your current pick accuracy rate and target?",
			"How do you manage wave planning and release today?",
			"How is pick-face replenishment triggered and executed?",
		},
		Considerations: []string{
			"Pick validation technology (barcode, RFID, voice, light)",
			"Wave planning rules",
			"Replenishment triggers",
			"Multi-order picking support",
		},
	},
	{
		Key:         "packing",
		Title:       "Packing Operations",
		Description: "Cartonization, packaging strategies, pack verification, labeling",
		FocusAreas: []string{
			"Cartonization algorithms and rules",
			"Package optimization strategies",
			"Pack verification procedures",
			"Labeling and documentation",
			"Quality control in packing",
			"Pack-to-order processing",
		},
		Questions: []string{
			"How do you select carton sizes for outbound orders today?",
			"What pack verification steps do you perform before sealing?",
			"What special packaging requirements do your customers impose?",
			"What labeling and documentation must accompany each shipment?",
			"How do you track packing productivity and error rates?",
			"Do you support gift wrapping, kitting, or other value-added services?",
		},
		Considerations: []string{
			"Cartonization rule engine",
			"Scale and dimensioner integration",
			"Compliance labeling formats",
			"Value-added service workflows",
		},
	},
	{
		Key:         "shipping",
		Title:       "Shipping Management",
		Description: "Carrier management, rate shopping, shipment tracking, documentation",
		FocusAreas: []string{
			"Multi-carrier management",
			"Rate shopping and optimization",
			"Shipment tracking and visibility",
			"International shipping documentation",
			"Shipment consolidation strategies",
			"Carrier performance management",
		},
		Questions: []string{
			"Which carriers do you ship with and how are they selected per order?",
			"Do you perform rate shopping across carriers, and on what criteria?",
			"How do you provide shipment tracking visibility to customers?",
			"What international shipping and customs documentation do you produce?",
			"How do you consolidate shipments to reduce freight cost?",
			"How do you measure and manage carrier performance?",
		},
		Considerations: []string{
			"Carrier API integrations",
			"Freight audit data capture",
			"Export compliance documents",
			"Consolidation rules",
		},
	},
	{
		Key:         "yard",
		Title:       "Yard Management",
		Description: "Trailer tracking, dock scheduling, yard operations, detention tracking",
		FocusAreas: []string{
			"Trailer tracking and visibility",
			"Dock door assignment logic",
			"Yard jockey management",
			"Detention and demurrage tracking",
			"Gate management processes",
			"Yard capacity planning",
		},
		Questions: []string{
			"How do you track trailer locations and status within the yard?",
			"How are dock doors assigned to inbound and outbound loads?",
			"How do you schedule and dispatch yard jockey moves?",
			"How do you track detention and demurrage charges?",
			"What gate check-in and check-out processes do you run?",
			"What is your yard capacity and how often is it constrained?",
		},
		Considerations: []string{
			"Gate kiosk or guard integration",
			"Trailer pool visibility",
			"Appointment scheduling linkage",
			"Detention alerting",
		},
	},
	{
		Key:         "labor",
		Title:       "Labor Management",
		Description: "Workforce planning, productivity tracking, performance metrics, incentives",
		FocusAreas: []string{
			"Workforce planning and scheduling",
			"Labor productivity tracking",
			"Engineered labor standards",
			"Task interleaving optimization",
			"Incentive program management",
			"Cross-training capabilities",
		},
		Questions: []string{
			"How do you plan and schedule warehouse labor across shifts?",
			"What productivity metrics do you track per associate and per function?",
			"Do you use engineered labor standards, and how are they maintained?",
			"How do you balance workload across zones during the day?",
			"What incentive or gainshare programs are in place?",
			"How do you track training and certifications for equipment operation?",
		},
		Considerations: []string{
			"Time and attendance integration",
			"Standards maintenance process",
			"Interleaving rules",
			"Performance dashboards",
		},
	},
	{
		Key:         "configuration",
		Title:       "System Configuration",
		Description: "Warehouse setup, zones, locations, storage types, business rules",
		FocusAreas: []string{
			"Warehouse zone configuration",
			"Location labeling schemes",
			"Storage type definitions",
			"User roles and permissions",
			"Business rule setup",
			"Master data management",
		},
		Questions: []string{
			"How many warehouses and zones will the system need to model?",
			"What location labeling and addressing scheme do you use?",
			"What storage types (rack, bulk, floor, mezzanine) must be configured?",
			"What user roles and permission boundaries do you require?",
			"Which business rules differ by client, channel, or product line?",
			"How is master data (items, locations, partners) maintained and by whom?",
		},
		Considerations: []string{
			"Configuration change control",
			"Multi-warehouse support",
			"Role-based access design",
			"Master data governance",
		},
	},
	{
		Key:         "technology",
		Title:       "Technology Integration",
		Description: "ERP integration, system interfaces, APIs, data synchronization",
		FocusAreas: []string{
			"ERP system integration",
			"API requirements and formats",
			"Real-time vs. batch processing",
			"Master data synchronization",
			"Error handling and recovery",
			"Integration monitoring",
		},
		Questions: []string{
			"Which ERP or host systems must the WMS integrate with?",
			"What interface formats and transports do those systems support?",
			"Which flows must be real-time and which can run in batch?",
			"How is master data synchronized between systems today?",
			"How are integration errors detected, reported, and recovered?",
			"What are your throughput and latency expectations for interfaces?",
		},
		Considerations: []string{
			"Interface architecture",
			"Data mapping and transformation",
			"Retry and recovery design",
			"Monitoring and alerting",
		},
	},
	{
		Key:         "automation",
		Title:       "Warehouse Automation",
		Description: "Conveyor systems, robotics, AS/RS, automated equipment integration",
		FocusAreas: []string{
			"Conveyor system integration",
			"Robotic system coordination",
			"AS/RS system management",
			"Automated sortation systems",
			"AGV/AMR coordination",
			"Equipment monitoring",
		},
		Questions: []string{
			"What automation equipment is installed or planned (conveyor, sorter, AS/RS, robots)?",
			"Which control systems (WCS/WES) sit between the WMS and equipment?",
			"How should the WMS coordinate work release to automated areas?",
			"What happens operationally when an automated system goes down?",
			"How do you measure automation utilization and throughput?",
			"What is the expected ROI horizon for planned automation investments?",
		},
		Considerations: []string{
			"WCS/WES interface boundaries",
			"Degraded-mode operation",
			"Equipment telemetry",
			"Maintenance windows",
		},
	},
	{
		Key:         "mobile",
		Title:       "Mobile Technology",
		Description: "RF devices, mobile interfaces, barcode scanning, offline capabilities",
		FocusAreas: []string{
			"Mobile device requirements",
			"RF gun configuration",
			"Barcode scanning standards",
			"RFID integration",
			"Offline functionality",
			"Device management",
		},
		Questions: []string{
			"What mobile and RF devices are in use or planned across the facility?",
			"What barcode symbologies and label standards do you scan today?",
			"Do you have RFID requirements for any product categories?",
			"Which workflows must keep working when Wi-Fi coverage drops?",
			"How are devices provisioned, updated, and tracked?",
			"Do you need mobile printing at the point of work?",
		},
		Considerations: []string{
			"Wi-Fi site survey coverage",
			"Device fleet management",
			"Screen flow ergonomics",
			"Rugged hardware specs",
		},
	},
	{
		Key:         "reporting",
		Title:       "Reporting & Analytics",
		Description: "KPIs, dashboards, standard reports, business intelligence",
		FocusAreas: []string{
			"Key performance indicators",
			"Real-time dashboards",
			"Standard report requirements",
			"Ad-hoc reporting capabilities",
			"Historical data retention",
			"Business intelligence integration",
		},
		Questions: []string{
			"Which KPIs must be visible in real time on the warehouse floor?",
			"What standard reports does each role need and on what schedule?",
			"Who needs ad-hoc query capability and over what data?",
			"How long must operational history be retained and queryable?",
			"Which BI or analytics platforms should the WMS feed?",
			"What benchmarks do you use to compare site performance?",
		},
		Considerations: []string{
			"Data warehouse feeds",
			"Report distribution",
			"Retention policies",
			"Floor display dashboards",
		},
	},
	{
		Key:         "compliance",
		Title:       "Compliance & Quality",
		Description: "Regulatory compliance, lot traceability, quality control, audit trails",
		FocusAreas: []string{
			"Regulatory compliance requirements",
			"Lot traceability and recall",
			"Quality control processes",
			"Audit trail management",
			"Temperature monitoring",
			"Chain of custody tracking",
		},
		Questions: []string{
			"Which regulations govern your products (FDA, DEA, hazmat, customs)?",
			"What lot traceability and recall response capability do you need?",
			"What quality holds and inspection workflows must be enforced?",
			"What audit trail detail is required and for how long?",
			"Do any products require temperature or condition monitoring?",
			"What chain of custody documentation do your customers require?",
		},
		Considerations: []string{
			"Recall simulation support",
			"Hold and release workflows",
			"Immutable audit logging",
			"Condition monitoring integration",
		},
	},
	{
		Key:         "orders",
		Title:       "Order Management",
		Description: "Order processing, prioritization, allocation, customer requirements",
		FocusAreas: []string{
			"Order prioritization rules",
			"Allocation strategies",
			"Order splitting and consolidation",
			"Rush order handling",
			"SLA management",
			"Backorder management",
		},
		Questions: []string{
			"How are orders prioritized when demand exceeds capacity?",
			"What allocation strategy do you apply (FIFO, fair share, priority)?",
			"When do you split or consolidate orders across shipments?",
			"How are rush orders injected into the day's work?",
			"What customer SLAs drive cutoff times and service levels?",
			"How are backorders created, tracked, and released?",
		},
		Considerations: []string{
			"Order orchestration rules",
			"Cutoff time handling",
			"Customer-specific routing guides",
			"Backorder release logic",
		},
	},
	{
		Key:         "returns",
		Title:       "Returns Processing",
		Description: "Return workflows, RMA processing, disposition rules, refurbishment",
		FocusAreas: []string{
			"Return authorization processes",
			"Disposition rule management",
			"Return reason handling",
			"Restocking procedures",
			"Refurbishment workflows",
			"Vendor return processing",
		},
		Questions: []string{
			"What is your return authorization (RMA) process today?",
			"How are disposition decisions (restock, refurbish, scrap) made?",
			"What return reasons do you track and how are they analyzed?",
			"How quickly must returned stock be available to sell again?",
			"Do you operate refurbishment or repair workflows in-house?",
			"How are returns to vendors initiated and tracked?",
		},
		Considerations: []string{
			"RMA system integration",
			"Grading and disposition rules",
			"Credit processing linkage",
			"Returns analytics",
		},
	},
	{
		Key:         "implementation",
		Title:       "Implementation Planning",
		Description: "Go-live strategy, data migration, training, testing, change management",
		FocusAreas: []string{
			"Implementation timeline planning",
			"Data migration strategies",
			"User training programs",
			"System testing procedures",
			"Cutover planning",
			"Success criteria definition",
		},
		Questions: []string{
			"What is your target go-live window and what constrains it?",
			"What data must migrate from legacy systems and in what state is it?",
			"How will users be trained and how much floor time is available?",
			"What test phases (unit, integration, volume, UAT) do you require?",
			"What is the cutover plan and acceptable downtime window?",
			"How will go-live success be measured in the first 30/60/90 days?",
		},
		Considerations: []string{
			"Phased vs. big-bang rollout",
			"Data cleansing effort",
			"Hypercare staffing",
			"Rollback criteria",
		},
	},
	{
		Key:         "support",
		Title:       "Support & Maintenance",
		Description: "Ongoing support, SLAs, upgrades, documentation, knowledge transfer",
		FocusAreas: []string{
			"Support level agreements",
			"Issue escalation procedures",
			"System upgrade planning",
			"Documentation requirements",
			"Knowledge transfer processes",
			"Continuous improvement",
		},
		Questions: []string{
			"What support hours and response SLAs do your operations require?",
			"How should issues escalate between your team and the vendor?",
			"How often do you expect to take system upgrades?",
			"What documentation must be delivered and kept current?",
			"How will knowledge transfer to your internal team happen?",
			"What continuous improvement cadence do you want after go-live?",
		},
		Considerations: []string{
			"Support tier model",
			"Upgrade testing strategy",
			"Runbook ownership",
			"Enhancement request process",
		},
	},
}
