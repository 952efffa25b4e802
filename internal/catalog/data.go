package catalog

// categories is the built-in inspection checklist. Order matters: it drives
// item numbering in reports and the layout of every derived view, so new
// items go at the end of their category and new categories at the end of the
// list.
var categories = []Category{
	{
		Name: "Exterior & Body",
		Items: []Item{
			{Name: "Paint condition", Description: "Check for fading, mismatched panels, overspray and touch-up marks that suggest repainting."},
			{Name: "Body panels", Description: "Sight down each panel for dents, ripples and misaligned gaps that indicate collision repair."},
			{Name: "Doors & hinges", Description: "Open and close every door; listen for sagging hinges and check seal condition."},
			{Name: "Windshield", Description: "Look for chips, cracks and poor-quality resin repairs in the driver's line of sight."},
			{Name: "Side & rear glass", Description: "Verify all glass is original or properly fitted and free of cracks or delamination."},
			{Name: "Headlights", Description: "Check lens clarity, moisture intrusion and that both low and high beams work."},
			{Name: "Tail lights", Description: "Confirm brake, reverse and indicator functions; look for cracked or fogged lenses."},
			{Name: "Side mirrors", Description: "Check glass, housing and electric adjustment/folding where fitted."},
			{Name: "Bumpers", Description: "Inspect for cracks, poorly repaired impacts and loose mounting clips."},
		},
	},
	{
		Name: "Engine",
		Items: []Item{
			{Name: "Engine oil level", Description: "Pull the dipstick with the engine cold; verify level and that oil is not sludgy or milky."},
			{Name: "Oil leaks", Description: "Inspect valve cover, oil pan and front/rear main seal areas for seepage or fresh drips."},
			{Name: "Coolant level", Description: "Check reservoir level and color; rusty or oily coolant points to neglect or head gasket issues."},
			{Name: "Radiator & hoses", Description: "Squeeze hoses for sponginess, check clamps and look for crusty deposits around the radiator."},
			{Name: "Drive belts", Description: "Inspect belts for cracking, glazing and correct tension; listen for squeal at startup."},
			{Name: "Battery", Description: "Check terminal corrosion, hold-down hardware and manufacture date; test resting voltage if possible."},
			{Name: "Air filter", Description: "Open the airbox; a badly clogged filter suggests skipped maintenance."},
			{Name: "Engine mounts", Description: "Watch for excessive engine rock when revved in gear; inspect visible mounts for cracked rubber."},
			{Name: "Exhaust smoke", Description: "Start cold and observe tailpipe: blue means oil, white sweet smoke means coolant, black means running rich."},
			{Name: "Idle quality", Description: "Let the engine idle warm; note hunting, misfires or vibration through the cabin."},
		},
	},
	{
		Name: "Transmission & Drivetrain",
		Items: []Item{
			{Name: "Gear engagement", Description: "Shift through all gears; note grinding, hesitation or harsh engagement from the gearbox."},
			{Name: "Clutch operation", Description: "Check bite point height and slippage under load on manual vehicles."},
			{Name: "Transmission leaks", Description: "Inspect the transmission case and cooler lines for fluid seepage."},
			{Name: "CV joints & axles", Description: "Listen for clicking on full-lock turns; inspect boots for tears and thrown grease."},
			{Name: "Differential", Description: "Check for whine at speed and leaks around the differential housing."},
			{Name: "Driveshaft", Description: "Look for play in universal joints and vibration at highway speed."},
		},
	},
	{
		Name: "Suspension & Steering",
		Items: []Item{
			{Name: "Shock absorbers", Description: "Bounce each corner; more than one rebound or visible leakage means worn dampers."},
			{Name: "Springs", Description: "Check ride height side to side and inspect coils or leaves for cracks and sag."},
			{Name: "Control arms & bushings", Description: "Inspect rubber bushings for cracking and play; note clunks over bumps."},
			{Name: "Ball joints", Description: "Check for play by rocking the wheel at 6 and 12 o'clock with the car lifted."},
			{Name: "Steering response", Description: "On the test drive, note wandering, off-center pull or excessive free play at the wheel."},
			{Name: "Power steering fluid", Description: "Verify fluid level and color; listen for pump whine at full lock."},
			{Name: "Wheel alignment", Description: "Check for uneven tire wear and that the steering wheel sits straight when driving straight."},
		},
	},
	{
		Name: "Brakes",
		Items: []Item{
			{Name: "Brake pads", Description: "Estimate remaining pad material through the wheel spokes or with a wheel removed."},
			{Name: "Brake discs", Description: "Inspect for scoring, lips at the outer edge and blue heat discoloration."},
			{Name: "Brake lines", Description: "Trace flexible and hard lines for chafing, corrosion and weeping fittings."},
			{Name: "Brake fluid", Description: "Check reservoir level and color; dark fluid indicates overdue service."},
			{Name: "Parking brake", Description: "Engage on an incline; count the lever clicks or verify the electronic brake holds."},
			{Name: "Pedal feel", Description: "Press firmly with the engine running; a sinking or spongy pedal means hydraulic trouble."},
		},
	},
	{
		Name: "Tires & Wheels",
		Items: []Item{
			{Name: "Front tire tread", Description: "Measure tread depth at inner, center and outer grooves on both front tires."},
			{Name: "Rear tire tread", Description: "Measure tread depth on both rear tires and compare wear against the fronts."},
			{Name: "Tire wear pattern", Description: "Cupping, feathering or one-shoulder wear points to alignment or suspension faults."},
			{Name: "Spare tire", Description: "Confirm the spare is present, inflated and that jack and wrench are in the car."},
			{Name: "Wheel rims", Description: "Inspect for bends, cracks, curb rash and missing balance weights."},
			{Name: "Lug nuts", Description: "Check that all lug nuts are present, matching and not rounded off."},
		},
	},
	{
		Name: "Electrical",
		Items: []Item{
			{Name: "Alternator charging", Description: "With the engine running, verify charging voltage and no battery warning light."},
			{Name: "Starter motor", Description: "Note slow cranking, grinding or repeated attempts needed to start."},
			{Name: "Dashboard warning lights", Description: "Confirm all warning lamps illuminate at key-on and extinguish after start."},
			{Name: "Interior lights", Description: "Test dome, map and glovebox lights and dashboard illumination."},
			{Name: "Power windows", Description: "Run every window full travel from both the driver and local switches."},
			{Name: "Central locking", Description: "Lock and unlock from the key, remote and interior switch; check every door responds."},
			{Name: "Horn", Description: "Test the horn for sound and consistent contact."},
			{Name: "Wipers & washers", Description: "Check wiper operation at all speeds, blade condition and washer spray aim."},
		},
	},
	{
		Name: "Interior",
		Items: []Item{
			{Name: "Seats & upholstery", Description: "Inspect for tears, burns, sagging foam and working seat adjustments."},
			{Name: "Dashboard condition", Description: "Look for cracks, warping from sun exposure and rattles over bumps."},
			{Name: "Instrument cluster", Description: "Verify gauges, odometer and trip computer work and backlighting is even."},
			{Name: "Seat belts", Description: "Pull each belt fully out; check webbing fraying and that retractors and latches work."},
			{Name: "Carpets & headliner", Description: "Lift carpets to check for moisture and rust; inspect headliner sag and stains."},
			{Name: "Pedal rubbers", Description: "Heavy pedal wear inconsistent with indicated mileage suggests odometer tampering."},
			{Name: "Steering wheel wear", Description: "Compare rim wear against the indicated mileage and check for play in the column."},
			{Name: "Odometer consistency", Description: "Cross-check displayed mileage against service stickers, records and overall wear."},
		},
	},
	{
		Name: "Air Conditioning & Heating",
		Items: []Item{
			{Name: "Compressor engagement", Description: "Switch A/C on at idle; the compressor clutch should engage without rattling or belt squeal."},
			{Name: "Cooling performance", Description: "Measure vent temperature after a few minutes; weak cooling means leaks or a tired compressor."},
			{Name: "Heater output", Description: "Verify hot air at the vents with the engine warm and no coolant smell in the cabin."},
			{Name: "Blower fan", Description: "Run the fan through all speeds; listen for bearing noise and check airflow at each vent."},
		},
	},
	{
		Name: "Underbody & Chassis",
		Items: []Item{
			{Name: "Frame rails", Description: "Inspect rails for kinks, fresh undercoating and crumple damage from past accidents."},
			{Name: "Rust & corrosion", Description: "Probe rocker panels, wheel arches and floor pans; distinguish surface rust from perforation."},
			{Name: "Exhaust system", Description: "Check pipes, hangers and muffler for holes, patches and rattles."},
			{Name: "Fuel lines", Description: "Trace fuel and brake lines under the car for corrosion and seepage."},
			{Name: "Underbody leaks", Description: "Look for fresh fluid on the underbody and on the ground after the car has sat."},
			{Name: "Chassis welds", Description: "Non-factory welds or plating on structural members indicate major repair."},
			{Name: "Skid plates", Description: "Check protective plates are present, secure and not hiding impact damage."},
		},
	},
	{
		Name: "Documentation",
		Items: []Item{
			{Name: "Registration papers", Description: "Verify the registration matches the plate, VIN and seller identity."},
			{Name: "Service history", Description: "Review stamps, invoices and intervals; gaps around major services are a red flag."},
			{Name: "Ownership title", Description: "Confirm the title is clean, liens are released and the seller can legally transfer."},
			{Name: "Plate match", Description: "Check that plate, windshield VIN and door-jamb VIN all agree with the paperwork."},
		},
	},
}
