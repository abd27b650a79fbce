package testutil

// Sample XML responses for API testing

// SampleDeparturesResponse is a minimal valid etd response for one station
const SampleDeparturesResponse = `<?xml version="1.0" encoding="utf-8"?>
<root>
	<uri><![CDATA[http://api.bart.gov/api/etd.aspx?cmd=etd&orig=MCAR]]></uri>
	<date>10/16/2026</date>
	<time>09:51:12 AM PDT</time>
	<station>
		<name>MacArthur</name>
		<abbr>MCAR</abbr>
		<etd>
			<destination>Antioch</destination>
			<abbreviation>ANTC</abbreviation>
			<limited>0</limited>
			<estimate>
				<minutes>3</minutes>
				<platform>3</platform>
				<direction>North</direction>
				<length>10</length>
				<color>YELLOW</color>
				<hexcolor>#ffff33</hexcolor>
				<bikeflag>1</bikeflag>
				<delay>0</delay>
			</estimate>
			<estimate>
				<minutes>18</minutes>
				<platform>3</platform>
				<direction>North</direction>
				<length>6</length>
				<color>YELLOW</color>
				<hexcolor>#ffff33</hexcolor>
				<bikeflag>1</bikeflag>
				<delay>120</delay>
			</estimate>
		</etd>
		<etd>
			<destination>Richmond</destination>
			<abbreviation>RICH</abbreviation>
			<limited>0</limited>
			<estimate>
				<minutes>Leaving</minutes>
				<platform>2</platform>
				<direction>North</direction>
				<length>4</length>
				<color>ORANGE</color>
				<hexcolor>#ff9933</hexcolor>
				<bikeflag>1</bikeflag>
				<delay>0</delay>
			</estimate>
		</etd>
	</station>
	<message></message>
</root>`

// SampleNoDeparturesResponse is an etd response when nothing is scheduled
const SampleNoDeparturesResponse = `<?xml version="1.0" encoding="utf-8"?>
<root>
	<date>10/16/2026</date>
	<time>02:10:00 AM PDT</time>
	<message><warning>No data matched your criteria.</warning></message>
</root>`

// SampleAdvisoriesResponse contains one delay advisory
const SampleAdvisoriesResponse = `<?xml version="1.0" encoding="utf-8"?>
<root>
	<date>10/16/2026</date>
	<time>09:51:00 AM PDT</time>
	<bsa id="232887">
		<station>BART</station>
		<type>DELAY</type>
		<description><![CDATA[There is a 10-minute delay at Embarcadero in the East Bay direction due to an equipment problem.]]></description>
		<sms_text><![CDATA[10-min delay at EMBR EB dir due to equip prob.]]></sms_text>
		<posted>Fri Oct 16 2026 09:35 AM PDT</posted>
		<expires>Thu Dec 31 2037 11:59 PM PST</expires>
	</bsa>
	<message></message>
</root>`

// SampleNoDelaysResponse is the bsa response when there is nothing to report
const SampleNoDelaysResponse = `<?xml version="1.0" encoding="utf-8"?>
<root>
	<date>10/16/2026</date>
	<time>09:51:00 AM PDT</time>
	<bsa>
		<station>BART</station>
		<description><![CDATA[No delays reported.]]></description>
		<sms_text><![CDATA[No delays reported.]]></sms_text>
	</bsa>
	<message></message>
</root>`

// SampleStationsResponse is a trimmed stns response
const SampleStationsResponse = `<?xml version="1.0" encoding="utf-8"?>
<root>
	<stations>
		<station>
			<name>12th St. Oakland City Center</name>
			<abbr>12TH</abbr>
			<gtfs_latitude>37.803768</gtfs_latitude>
			<gtfs_longitude>-122.271450</gtfs_longitude>
			<address>1245 Broadway</address>
			<city>Oakland</city>
			<county>alameda</county>
			<state>CA</state>
			<zipcode>94612</zipcode>
		</station>
		<station>
			<name>Embarcadero</name>
			<abbr>EMBR</abbr>
			<gtfs_latitude>37.792874</gtfs_latitude>
			<gtfs_longitude>-122.397020</gtfs_longitude>
			<address>298 Market Street</address>
			<city>San Francisco</city>
			<county>sanfrancisco</county>
			<state>CA</state>
			<zipcode>94111</zipcode>
		</station>
		<station>
			<name>MacArthur</name>
			<abbr>MCAR</abbr>
			<gtfs_latitude>37.829065</gtfs_latitude>
			<gtfs_longitude>-122.267040</gtfs_longitude>
			<address>555 40th Street</address>
			<city>Oakland</city>
			<county>alameda</county>
			<state>CA</state>
			<zipcode>94609</zipcode>
		</station>
	</stations>
	<message></message>
</root>`

// SampleFareResponse is a fare response between two stations
const SampleFareResponse = `<?xml version="1.0" encoding="utf-8"?>
<root>
	<origin>12th</origin>
	<destination>embr</destination>
	<sched_num>52</sched_num>
	<trip>
		<fare>3.30</fare>
		<discount><clipper>1.65</clipper></discount>
	</trip>
	<fares level="normal">
		<fare amount="3.30" class="clipper"><name>Clipper</name></fare>
		<fare amount="1.20" class="rtcclipper"><name>Clipper RTC</name></fare>
		<fare amount="1.20" class="senior"><name>Senior/Disabled Clipper</name></fare>
		<fare amount="1.60" class="student"><name>Youth Clipper</name></fare>
	</fares>
	<message></message>
</root>`

// SampleErrorResponse is a service error reported inside a 200 response
const SampleErrorResponse = `<?xml version="1.0" encoding="utf-8"?>
<root>
	<message>
		<error>
			<text>Invalid key</text>
			<details>The api key was missing or invalid.</details>
		</error>
	</message>
</root>`
